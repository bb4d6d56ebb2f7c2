package helper

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest. The digest embeds its own
// algorithm version and cost, so older digests stay verifiable after a cost
// bump.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(plain, hashed string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
