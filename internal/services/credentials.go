package services

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the most bcrypt will consider
const maxPasswordBytes = 72

// dummyHashes holds one throwaway hash per cost, keyed by int
var dummyHashes sync.Map

// HashPassword derives a salted bcrypt hash of password at the given cost
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash
func VerifyPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// NeedsRehash reports whether hash was made at a different cost than wanted
func NeedsRehash(hash string, cost int) bool {
	current, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return true
	}
	return current != cost
}

// dummyHash returns a fixed hash at cost to compare against when no user
// matched, so a miss costs the same bcrypt work as a wrong password.
func dummyHash(cost int) string {
	if hash, ok := dummyHashes.Load(cost); ok {
		return hash.(string)
	}
	hash, err := HashPassword("routinesdb-no-such-user", cost)
	if err != nil {
		return ""
	}
	actual, _ := dummyHashes.LoadOrStore(cost, hash)
	return actual.(string)
}
