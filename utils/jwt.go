package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JwtService emite e valida tokens HS256. O subject do token é o e-mail
// (campo usuario) do usuário autenticado.
type JwtService struct {
	secret []byte
	expiry time.Duration
}

func NewJwtService(secret string, expiry time.Duration) *JwtService {
	return &JwtService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

func (s *JwtService) GenerateToken(usuario string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   usuario,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken retorna o subject (e-mail) do token, ou erro se o token for
// malformado, tiver assinatura inválida ou já tiver expirado.
func (s *JwtService) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", errors.New("invalid token")
	}

	return claims.Subject, nil
}
