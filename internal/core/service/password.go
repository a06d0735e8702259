package service

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted, one-way bcrypt hash from plaintext. Two
// calls with the same input produce different hashes; verification goes
// through CheckPassword.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext hashes to hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
