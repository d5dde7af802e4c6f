package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword encodes the password with argon2id. Only registered
// storefront accounts are hashed; guest logins never touch this.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) bool {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	return err == nil && ok
}
