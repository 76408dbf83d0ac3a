package utils

import (
	"crypto/rand"
	"math/big"
)

const digits = "0123456789"

// GenerateCode returns a random numeric code of the given length, used
// for password-reset verification.
func GenerateCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}
