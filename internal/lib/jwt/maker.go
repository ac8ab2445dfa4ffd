// Package jwt выпускает и проверяет токены посетителей витрины.
//
// Токен лишь связывает запросы с витриной посетителя и не является аутентификацией:
// внутри только идентификатор посетителя и стандартные claims.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "saya-shop"

// ErrInvalidToken возвращается для токена без идентификатора посетителя.
var ErrInvalidToken = errors.New("invalid visitor token")

// Maker описывает выпуск и разбор токенов посетителей.
type Maker interface {
	GenerateToken(visitorID string) (string, error)
	ParseToken(tokenStr string) (*VisitorClaims, error)
}

// VisitorClaims — содержимое токена посетителя.
type VisitorClaims struct {
	VisitorID string `json:"visitor_id"`
	jwt.RegisteredClaims
}

// MakerImpl подписывает токены HS256 секретным ключом.
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

// GenerateToken выпускает токен для visitorID.
func (j *MakerImpl) GenerateToken(visitorID string) (string, error) {
	const op = "jwt.GenerateToken"
	now := time.Now()
	claims := VisitorClaims{
		VisitorID: visitorID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   visitorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает его claims.
func (j *MakerImpl) ParseToken(tokenStr string) (*VisitorClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &VisitorClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*VisitorClaims)
	if !ok || !token.Valid || claims.VisitorID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return claims, nil
}
