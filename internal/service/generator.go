package service

import (
	"errors"

	"github.com/passclip/passclip-go/internal/crypto"
	"github.com/passclip/passclip-go/internal/model"
)

// MaxAPILength bounds the resolved length of passwords served over HTTP.
const MaxAPILength = 1024

var ErrLengthTooLong = errors.New("password length must be at most 1024")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	newRandom func() crypto.Random
}

// NewGeneratorService creates a GeneratorService drawing from crypto/rand.
func NewGeneratorService() *GeneratorService {
	return NewGeneratorServiceWithRandom(func() crypto.Random {
		return crypto.NewSecureRandom()
	})
}

// NewGeneratorServiceWithRandom creates a GeneratorService that calls
// newRandom once per request.
func NewGeneratorServiceWithRandom(newRandom func() crypto.Random) *GeneratorService {
	return &GeneratorService{newRandom: newRandom}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	for _, n := range []*int{req.Length, req.Upper, req.Digits, req.Special} {
		if n != nil && *n > MaxAPILength {
			return model.GenerateResponse{}, ErrLengthTooLong
		}
	}

	q := ResolveRequest(req)
	if q.Length() > MaxAPILength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	password := crypto.Generate(s.newRandom(), q)

	return model.GenerateResponse{
		Password: password,
		Length:   q.Length(),
		Quota:    q,
	}, nil
}

// ResolveRequest applies defaults to the request and resolves its quota.
func ResolveRequest(req model.GenerateRequest) crypto.Quota {
	return crypto.ResolveQuota(
		intOrDefault(req.Length, crypto.DefaultLength),
		intOrDefault(req.Upper, crypto.DefaultUpper),
		intOrDefault(req.Digits, crypto.DefaultDigit),
		intOrDefault(req.Special, crypto.DefaultSpecial),
	)
}

// intOrDefault returns the dereferenced pointer value, or the fallback if nil or negative.
func intOrDefault(p *int, fallback int) int {
	if p == nil || *p < 0 {
		return fallback
	}
	return *p
}
