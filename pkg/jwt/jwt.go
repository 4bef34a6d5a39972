package jwt

import (
	"errors"
	"time"

	"github.com/DevSaude360/saude360-backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims identify the authenticated actor: which profile table the id
// points into (patient or professional) plus the credential row behind it.
type Claims struct {
	CredentialID int       `json:"credential_id"`
	ActorType    string    `json:"actor_type"`
	ActorID      int       `json:"actor_id"`
	Email        string    `json:"email"`
	TokenType    TokenType `json:"token_type"`
	TokenID      string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

func (s *JWTService) GenerateAccessToken(credentialID int, actorType string, actorID int, email string) (string, string, error) {
	return s.generate(credentialID, actorType, actorID, email, AccessToken, s.config.AccessExpiry)
}

func (s *JWTService) GenerateRefreshToken(credentialID int, actorType string, actorID int, email string) (string, string, error) {
	return s.generate(credentialID, actorType, actorID, email, RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) generate(credentialID int, actorType string, actorID int, email string, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		CredentialID: credentialID,
		ActorType:    actorType,
		ActorID:      actorID,
		Email:        email,
		TokenType:    tokenType,
		TokenID:      tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
