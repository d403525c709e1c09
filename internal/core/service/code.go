package service

import (
	"crypto/rand"
	"math/big"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CodeLength is the length of activation and restore-password codes.
const CodeLength = 30

// GenerateCode returns a uniformly random alphanumeric string of length n
// from a cryptographically secure source.
func GenerateCode(n int) (string, error) {
	if n <= 0 {
		n = CodeLength
	}
	max := big.NewInt(int64(len(codeCharset)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = codeCharset[idx.Int64()]
	}
	return string(b), nil
}
