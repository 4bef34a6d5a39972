package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/DevSaude360/saude360-backend/pkg/jwt"
	"github.com/DevSaude360/saude360-backend/pkg/response"

	"github.com/redis/go-redis/v9"
)

type contextKey string

const claimsKey contextKey = "claims"

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// Authenticate requires a valid, non-revoked access token and stores its
// claims in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, errMsg := m.resolveClaims(r)
		if claims == nil {
			response.Unauthorized(w, errMsg)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// OptionalAuthenticate attaches claims when a valid token is present but
// lets anonymous requests through. Mutation audit entries use the claims
// when available.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, _ := m.resolveClaims(r); claims != nil {
			r = r.WithContext(withClaims(r.Context(), claims))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) resolveClaims(r *http.Request) (*jwt.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "Cabeçalho de autorização é obrigatório"
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Formato do cabeçalho de autorização inválido"
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, "Token inválido ou expirado"
	}
	if claims.TokenType != jwt.AccessToken {
		return nil, "Tipo de token inválido"
	}

	tokenKey := fmt.Sprintf("access_token:%d:%s", claims.CredentialID, claims.TokenID)
	exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
	if err != nil || exists == 0 {
		return nil, "Token revogado"
	}

	return claims, ""
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext extracts the authenticated claims, when present.
func GetClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}

// GetCredentialIDFromContext returns the credential id behind the request,
// or nil for anonymous requests.
func GetCredentialIDFromContext(ctx context.Context) *int {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok {
		return nil
	}
	id := claims.CredentialID
	return &id
}
