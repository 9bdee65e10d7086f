package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/meetnmeal/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated member's user ID.
	UserIDKey contextKey = "user_id"
	// GroupIDKey is the context key for storing the authenticated member's session.
	GroupIDKey contextKey = "group_id"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetGroupID extracts the session code from the context.
// Returns empty string if not found.
func GetGroupID(ctx context.Context) string {
	groupID, _ := ctx.Value(GroupIDKey).(string)
	return groupID
}

func withMember(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, GroupIDKey, claims.GroupID)
	return context.WithValue(ctx, UserIDKey, claims.UserID)
}

// MemberScoped is implemented by RPC requests addressed to one member. The
// generated getters of requests carrying group_id and user_id satisfy it.
type MemberScoped interface {
	GetGroupId() string
	GetUserId() string
}

// bearerToken parses an "Authorization: Bearer <token>" header value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", nil
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}

// RequireMember returns HTTP middleware for routes with {group_id} and
// {user_id} path values. The token comes from the Authorization header or,
// for browsers opening a WebSocket, the "token" query parameter.
//
// A presented token must belong to the addressed member. Requests without a
// token pass only when required is false.
func RequireMember(tokens *auth.TokenManager, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r.Header.Get("Authorization"))
			if err == nil && token == "" {
				token = r.URL.Query().Get("token")
			}
			if err == nil && token == "" && !required {
				next.ServeHTTP(w, r)
				return
			}

			var claims *auth.Claims
			if err == nil {
				claims, err = tokens.Authorize(token, r.PathValue("group_id"), r.PathValue("user_id"))
			}
			if err != nil {
				slog.Warn("Member token rejected",
					"path", r.URL.Path,
					"group_id", r.PathValue("group_id"),
					"user_id", r.PathValue("user_id"),
					"error", err,
				)
				writeUnauthorized(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(withMember(r.Context(), claims)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":  "unauthorized",
		"detail": err.Error(),
	})
}

// RequireMemberToken returns a Connect interceptor applying the same rule as
// RequireMember to requests implementing MemberScoped. Other requests pass
// through untouched.
func RequireMemberToken(tokens *auth.TokenManager, required bool) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			scoped, ok := req.Any().(MemberScoped)
			if !ok {
				return next(ctx, req)
			}

			token, err := bearerToken(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}
			if token == "" && !required {
				return next(ctx, req)
			}

			claims, err := tokens.Authorize(token, scoped.GetGroupId(), scoped.GetUserId())
			if err != nil {
				if errors.Is(err, auth.ErrWrongMember) {
					return nil, connect.NewError(connect.CodePermissionDenied, err)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(withMember(ctx, claims), req)
		}
	}
}
