package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"email":"aluno@example.com"}`)
	secret := "whsec_test"

	sig := signPayload(payload, secret)
	require.NoError(t, VerifyWebhookSignature(payload, sig, secret))
}

func TestVerifyWebhookSignatureVersionPrefix(t *testing.T) {
	payload := []byte(`{"ok":true}`)
	secret := "whsec_test"

	sig := "v1," + signPayload(payload, secret)
	assert.NoError(t, VerifyWebhookSignature(payload, sig, secret))
}

func TestVerifyWebhookSignatureMultipleCandidates(t *testing.T) {
	payload := []byte("hello")
	secret := "whsec_test"

	header := "v1,Zm9vYmFy " + signPayload(payload, secret)
	assert.NoError(t, VerifyWebhookSignature(payload, header, secret))
}

func TestVerifyWebhookSignatureRejects(t *testing.T) {
	payload := []byte("hello")
	secret := "whsec_test"

	assert.Error(t, VerifyWebhookSignature(payload, signPayload([]byte("tampered"), secret), secret))
	assert.Error(t, VerifyWebhookSignature(payload, signPayload(payload, "other_secret"), secret))
	assert.Error(t, VerifyWebhookSignature(payload, "", secret))
	assert.Error(t, VerifyWebhookSignature(payload, "not-base64!!!", secret))
	assert.Error(t, VerifyWebhookSignature(payload, signPayload(payload, secret), ""))
}
