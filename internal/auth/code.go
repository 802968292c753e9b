package auth

import (
	"crypto/rand"
	"math/big"

	"digiwork-hub.com/digiwork-hub/internal/constants"
)

// ResetCode returns a random uppercase alphanumeric password reset code.
func ResetCode() (string, error) {
	charset := constants.ResetCodeCharset
	max := big.NewInt(int64(len(charset)))

	code := make([]byte, constants.ResetCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = charset[n.Int64()]
	}
	return string(code), nil
}
