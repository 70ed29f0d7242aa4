package models

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// User is the model for the 'users' table. Only admins log in.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"` // bcrypt hash
	IsAdmin  bool   `json:"isAdmin" db:"is_admin"`
}

// CreateUserInput is the body of POST /api/admin/users.
type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// dummyHash is compared against when a username is unknown, so a failed login
// costs one bcrypt comparison whichever way it failed.
var dummyHash = sync.OnceValue(func() string {
	var p Password
	if err := p.Set("vapeshop-no-such-user"); err != nil {
		panic(err)
	}
	return p.Hash
})

// CheckPassword returns u when plaintext matches its hash and nil otherwise.
// A nil u still pays for a comparison.
func CheckPassword(u *User, plaintext string) *User {
	if u == nil {
		p := Password{Hash: dummyHash()}
		p.Matches(plaintext)
		return nil
	}
	p := Password{Hash: u.Password}
	ok, err := p.Matches(plaintext)
	if err != nil || !ok {
		return nil
	}
	return u
}
