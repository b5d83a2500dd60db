// Package service defines domain-level service interfaces whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts one-way password hashing for the identity provider.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
