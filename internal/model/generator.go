package model

import "github.com/passclip/passclip-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Nil or negative counts fall back to the defaults.
type GenerateRequest struct {
	Length  *int `json:"length"`
	Upper   *int `json:"upper"`
	Digits  *int `json:"digits"`
	Special *int `json:"special"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string       `json:"password"`
	Length   int          `json:"length"`
	Quota    crypto.Quota `json:"quota"`
}
