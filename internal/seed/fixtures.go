// Package seed fills the user store with known credentials for manual and
// automated testing.
package seed

// Credential is an email/password pair to be created by the seeder.
type Credential struct {
	Email    string
	Password string
}

// DefaultUsers is the fixed set of test accounts.
var DefaultUsers = []Credential{
	{Email: "user1@example.com", Password: "password123"},
	{Email: "user2@example.com", Password: "password456"},
	{Email: "admin@test.com", Password: "admin789"},
	{Email: "demo@test.com", Password: "demo123"},
}
