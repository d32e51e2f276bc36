package auth

import (
	"time"

	"registrar/config"
	"registrar/internal/domain/service"
	"registrar/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const adminIssuer = "registrar"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Administrative tokens are signed with secretKey.admin.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Admin == "" {
		return nil, errors.New("admin jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Admin),
		now:    time.Now,
	}, nil
}

// GenerateToken creates a signed HS256 token for subject.
func (s *jwtService) GenerateToken(subject string, roles []string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    adminIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ValidateToken checks signature, algorithm, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(adminIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
