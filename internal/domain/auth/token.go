package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hrms/internal/domain/core"
)

// Claims bind a bearer token to one session of one account.
type Claims struct {
	SubjectID      string           `json:"uid"`
	Kind           core.AccountKind `json:"knd"`
	OrganizationID string           `json:"oid"`
	SessionID      string           `json:"sid"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, claims Claims, issuedAt, expiresAt time.Time) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        claims.SessionID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string, now func() time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithTimeFunc(now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SubjectID == "" || claims.OrganizationID == "" || claims.SessionID == "" || !claims.Kind.Valid() {
		return nil, errors.New("incomplete token claims")
	}
	return claims, nil
}
