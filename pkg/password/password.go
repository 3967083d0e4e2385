// Package password wraps bcrypt for credential hashing. Raw passwords and
// hashes must never be logged.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is bcrypt's standard work factor (10 rounds).
const DefaultCost = bcrypt.DefaultCost

// Hash derives a one-way hash of password at the given cost. bcrypt salts per
// call, so hashing the same password twice yields different strings.
func Hash(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash.
func Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
