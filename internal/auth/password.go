package auth

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const tempPasswordLength = 16

// Character classes for generated temporary passwords. Ambiguous glyphs
// (0/O, 1/l/I) are left out because the password is transmitted out-of-band.
const (
	lowerChars = "abcdefghijkmnpqrstuvwxyz"
	upperChars = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	digitChars = "23456789"
)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// GenerateTemporaryPassword produces a random one-time password containing
// at least one character from each class.
func GenerateTemporaryPassword() (string, error) {
	charset := lowerChars + upperChars + digitChars
	buf := make([]byte, tempPasswordLength)

	classes := []string{lowerChars, upperChars, digitChars}
	for i := range buf {
		source := charset
		if i < len(classes) {
			source = classes[i]
		}
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(source))))
		if err != nil {
			return "", err
		}
		buf[i] = source[idx.Int64()]
	}

	// Shuffle so the guaranteed class characters are not positional.
	for i := len(buf) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		buf[i], buf[j.Int64()] = buf[j.Int64()], buf[i]
	}
	return string(buf), nil
}
