// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tempo de vida do token de acesso.
const TokenTTL = 12 * time.Hour

var (
	secretOnce sync.Once
	secret     []byte
	secretErr  error
)

func jwtSecret() ([]byte, error) {
	secretOnce.Do(func() {
		s := os.Getenv("AUTH_JWT_SECRET")
		if s == "" {
			secretErr = errors.New("AUTH_JWT_SECRET não definida")
			return
		}
		secret = []byte(s)
	})
	return secret, secretErr
}

// Claims do token de acesso.
type Claims struct {
	UsuarioID uint `json:"usuarioId"`
	Admin     bool `json:"admin"`
	jwt.RegisteredClaims
}

// GerarToken emite um JWT HS256 para o usuário.
func GerarToken(usuarioID uint, admin bool) (string, error) {
	chave, err := jwtSecret()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		Admin:     admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(usuarioID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(chave)
}

// ValidarToken verifica assinatura e expiração e devolve as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	chave, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return chave, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok {
		return nil, errors.New("claims inválidas")
	}
	return claims, nil
}
