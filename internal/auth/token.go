package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims do token de acesso. WorkspaceID delimita o escopo de todos os dados
// financeiros consultados pela API.
type Claims struct {
	UserID      uint `json:"userId"`
	WorkspaceID uint `json:"workspaceId"`
	IsAdmin     bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Tempo de vida do access token
const AccessTTL = 8 * time.Hour

func secretKey() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET não configurado")
	}
	return []byte(s), nil
}

// GerarToken emite um JWT HS256 com o usuário e o workspace autenticados.
func GerarToken(userID, workspaceID uint, isAdmin bool) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID:      userID,
		WorkspaceID: workspaceID,
		IsAdmin:     isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(key)
}

// ParseAndValidate valida assinatura e expiração, devolvendo as claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, errors.New("token inválido")
	}
	if claims.WorkspaceID == 0 {
		return nil, errors.New("token sem workspace")
	}
	return claims, nil
}
