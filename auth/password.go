package auth

import "golang.org/x/crypto/bcrypt"

// HashCost matches the salt rounds existing accounts were created with.
const HashCost = 10

// maxPasswordBytes is the most bcrypt reads; longer input is cut to it so
// long passwords hash and verify the same way existing hashes were made.
const maxPasswordBytes = 72

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(password)) == nil
}
