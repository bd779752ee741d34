package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
)

// JWTServiceImpl implements domain.TokenService. The signing settings
// are fixed at construction and never re-read.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	audience  string
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer, audience string, tokenTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Generate implements domain.TokenService. The issued token carries
// exactly the identity claims downstream services decode: id (as a
// string), username and role, plus iss/aud/exp.
func (j *JWTServiceImpl) Generate(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Name,
		"role":     user.Role,
		"iss":      j.issuer,
		"aud":      j.audience,
		"exp":      j.now().Add(j.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	}, jwt.WithTimeFunc(j.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	id, ok := claims["id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		UserID:    id,
		Username:  username,
		Role:      role,
		ExpiresAt: int64(exp),
	}, nil
}
