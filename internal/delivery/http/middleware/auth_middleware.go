package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-barber-booking/internal/service"
	"go-barber-booking/pkg/jwt"
	"go-barber-booking/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleIDKey    contextKey = "role_id"
	TokenIDKey   contextKey = "token_id"
)

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

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		ctx, errMsg, err := m.authenticate(r.Context(), authHeader)
		if err != nil {
			response.InternalServerError(w, errMsg, err)
			return
		}
		if errMsg != "" {
			response.Unauthorized(w, errMsg)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate resolves credentials when present but lets
// anonymous requests through. A malformed or revoked token is still
// rejected: silently downgrading a bad credential to anonymous would
// mask client bugs.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx, errMsg, err := m.authenticate(r.Context(), authHeader)
		if err != nil {
			response.InternalServerError(w, errMsg, err)
			return
		}
		if errMsg != "" {
			response.Unauthorized(w, errMsg)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate validates the Authorization header and returns a context
// enriched with the caller's identity. A non-empty message with a nil
// error means the credential was rejected; a non-nil error means the
// check itself failed.
func (m *AuthMiddleware) authenticate(ctx context.Context, authHeader string) (context.Context, string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "Invalid authorization header format", nil
	}

	claims, err := m.jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, "Invalid or expired token", nil
	}

	if claims.TokenType != jwt.AccessToken {
		return nil, "Invalid token type", nil
	}

	tokenKey := fmt.Sprintf("access_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := m.redisClient.Exists(ctx, tokenKey).Result()
	if err != nil {
		return nil, "Failed to validate token", err
	}
	if exists == 0 {
		return nil, "Token has been revoked", nil
	}

	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
	ctx = context.WithValue(ctx, RoleIDKey, claims.RoleID)
	ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
	return ctx, "", nil
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetRoleIDFromContext extracts role ID from context
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(RoleIDKey).(int)
	return roleID, ok
}

// GetActorFromContext builds the access-control view of the caller.
// Requests that never passed authentication yield an anonymous actor.
func GetActorFromContext(ctx context.Context) service.Actor {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return service.Actor{}
	}
	roleID, _ := GetRoleIDFromContext(ctx)
	return service.Actor{
		ID:            userID,
		RoleID:        roleID,
		Authenticated: true,
	}
}
