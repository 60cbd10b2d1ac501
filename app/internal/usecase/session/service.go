package session

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("unauthorized")

type Claims struct {
	DeviceID string
}

type TokenService interface {
	GenerateToken(deviceID string) (string, error)
	ParseToken(token string) (*Claims, error)
}

// Service hands out device identities. A device owns its cart, favorites and
// theme the way a browser profile owns its local storage.
type Service struct {
	tokens TokenService
	newID  func() string
}

func NewService(tokens TokenService) *Service {
	return &Service{
		tokens: tokens,
		newID:  uuid.NewString,
	}
}

type StartResult struct {
	DeviceID string
	Token    string
}

func (s *Service) Start(ctx context.Context) (*StartResult, error) {
	deviceID := s.newID()
	token, err := s.tokens.GenerateToken(deviceID)
	if err != nil {
		return nil, err
	}
	return &StartResult{DeviceID: deviceID, Token: token}, nil
}

func (s *Service) Authenticate(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := s.tokens.ParseToken(token)
	if err != nil || claims.DeviceID == "" {
		return nil, ErrUnauthorized
	}
	return claims, nil
}
