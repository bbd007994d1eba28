package session

import "errors"

// ErrInvalidCredentials covers every login failure. Callers get no
// user-not-found vs wrong-password distinction.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken indicates the registration email is already held by a demo
// or registered identity.
var ErrEmailTaken = errors.New("an account with this email already exists")
