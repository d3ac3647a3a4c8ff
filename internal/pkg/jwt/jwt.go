package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// HoldClaims ties a promo hold to the code and email it was placed for.
type HoldClaims struct {
	Code   string    `json:"code"`
	Email  string    `json:"email"`
	HoldID uuid.UUID `json:"hold_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
}

func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
	}
}

func (s *Service) GenerateHoldToken(code, email string, holdID uuid.UUID, issuedAt, expiresAt time.Time) (string, error) {
	claims := HoldClaims{
		Code:   code,
		Email:  email,
		HoldID: holdID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        holdID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateHoldToken checks signature and expiry.
func (s *Service) ValidateHoldToken(tokenString string) (*HoldClaims, error) {
	return s.parse(tokenString)
}

// VerifyHoldSignature checks the signature only. Payment confirmations can
// arrive after the hold lapsed and still need the claims.
func (s *Service) VerifyHoldSignature(tokenString string) (*HoldClaims, error) {
	return s.parse(tokenString, jwt.WithoutClaimsValidation())
}

func (s *Service) parse(tokenString string, opts ...jwt.ParserOption) (*HoldClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &HoldClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*HoldClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
