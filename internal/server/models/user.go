package models

import "time"

// User is a stored credential record. Password is kept verbatim.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
}

// UserInfo is the password-less projection of a User used for listings.
type UserInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Info drops the password from u.
func (u *User) Info() *UserInfo {
	return &UserInfo{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
