package auth

import (
	"errors"
	"fmt"

	"scenario-server/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verifier проверяет подписанные HS256 bearer-токены и достает из них
// идентификатор пользователя (клейм "user_id").
type Verifier struct {
	secret []byte
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// VerifyToken валидирует токен и возвращает userID.
func (v *Verifier) VerifyToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, models.ErrTokenExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return uuid.Nil, models.ErrTokenMalformed
		}
		return uuid.Nil, models.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, models.ErrTokenInvalid
	}

	rawID, ok := claims["user_id"].(string)
	if !ok || rawID == "" {
		return uuid.Nil, models.ErrTokenInvalid
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, models.ErrTokenInvalid
	}
	return userID, nil
}

// IssueToken подписывает токен с user_id. Используется в тестах и
// вспомогательных утилитах; выпуск боевых токенов - забота auth-сервиса.
func (v *Verifier) IssueToken(userID uuid.UUID, extraClaims map[string]any) (string, error) {
	claims := jwt.MapClaims{"user_id": userID.String()}
	for k, val := range extraClaims {
		claims[k] = val
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
