// internal/app/system/adminauth/adminauth.go
package adminauth

import (
	"crypto/subtle"
)

// ValidateKey compares a provided admin key against the configured secret.
//
// It fails closed: an empty configured secret never authorizes anything, even
// if the provided key is also empty. The comparison is constant-time in the
// content of the strings; only the length can leak via the early return.
func ValidateKey(provided, secret string) bool {
	if secret == "" {
		return false
	}
	if len(provided) != len(secret) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) == 1
}
