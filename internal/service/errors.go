package service

import "errors"

// User-correctable failures surfaced by the auth service. The handlers render
// these as flash messages with a 200 response; anything else escalates.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")

	// ErrIncorrectUsername and ErrIncorrectPassword are kept distinct on
	// purpose: the registration/login flow reports which credential was
	// wrong, matching the application's established behaviour.
	ErrIncorrectUsername = errors.New("incorrect username")
	ErrIncorrectPassword = errors.New("incorrect password")

	ErrHashingPassword = errors.New("error hashing password")
)
