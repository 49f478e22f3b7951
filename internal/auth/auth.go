// internal/auth/auth.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// JWTClaims define o payload do token emitido no login. O email identifica
// o usuário apenas para exibição e auditoria; não há papéis de autorização.
type JWTClaims struct {
	Email string `json:"email"`
	Nome  string `json:"nome"`
	jwt.RegisteredClaims
}

// Hashing
func HashPassword(senha string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(senha), 14)
	return string(bytes), err
}

func CheckPasswordHash(senha, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

// GenerateJWT emite um token HS256. Segredo e expiração vêm da configuração,
// injetados pelo chamador.
func GenerateJWT(email, nome string, secret []byte, expiration time.Duration) (string, error) {
	claims := &JWTClaims{
		Email: email,
		Nome:  nome,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseJWT valida a assinatura e a expiração do token e devolve os claims.
func ParseJWT(tokenString string, secret []byte) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token inválido ou expirado")
	}
	return claims, nil
}
