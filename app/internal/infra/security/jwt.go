package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	sessionuc "example.com/vibe-storefront/app/internal/usecase/session"
)

type JWTService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
	}
}

type jwtClaims struct {
	DeviceID string `json:"did"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateToken(deviceID string) (string, error) {
	now := s.now()
	claims := jwtClaims{
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   deviceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(token string) (*sessionuc.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	return &sessionuc.Claims{DeviceID: claims.DeviceID}, nil
}
