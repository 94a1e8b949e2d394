package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// VerifyWebhookSignature checks the HMAC-SHA256 signature of an inbound
// webhook payload against the shared secret. The header carries one or
// more base64 signatures separated by spaces, each optionally prefixed
// with a version tag ("v1,<sig>").
func VerifyWebhookSignature(payload []byte, signatureHeader, secret string) error {
	if secret == "" {
		return errors.New("webhook secret not configured")
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return errors.New("missing signature header")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, candidate := range strings.Fields(signatureHeader) {
		if i := strings.LastIndex(candidate, ","); i >= 0 {
			candidate = candidate[i+1:]
		}
		sig, err := base64.StdEncoding.DecodeString(candidate)
		if err != nil {
			continue
		}
		if hmac.Equal(sig, expected) {
			return nil
		}
	}
	return errors.New("signature mismatch")
}
