package auth

import "errors"

// LoginDTO is the login request body.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. The two cases are deliberately indistinguishable so the endpoint
// cannot be used to enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")
