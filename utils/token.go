package utils

import (
	"crypto/rand"
	"math/big"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(tokenCharset))))
		token[i] = tokenCharset[n.Int64()]
	}
	return string(token)
}
