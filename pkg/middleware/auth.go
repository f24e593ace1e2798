package middleware

import (
	"net/http"
	"strings"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/pkg/token"
	"airline-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the bearer token: signature and expiry first, then the
// backing session row (logout revokes it), then the user's current status.
// A suspended account is locked out on its next request even if the token
// is still cryptographically valid.
func Auth(tokenManager *token.Manager, repo *repository.Repository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			rawToken := parts[1]

			claims, err := tokenManager.Verify(rawToken)
			if err != nil {
				logger.Warn("Token verification failed", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}
			sessionID, err := uuid.Parse(claims.SessionID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid token claims")
				return
			}

			session, err := repo.Session.FindByID(r.Context(), sessionID)
			if err != nil {
				logger.Error("Failed to load session",
					zap.Error(err),
					zap.String("session_id", sessionID.String()),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil || session.UserID != userID || !session.Valid(time.Now()) {
				utils.ResponseUnauthorized(w, "Session is revoked or expired")
				return
			}

			user, err := repo.User.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user",
					zap.Error(err),
					zap.String("user_id", userID.String()),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Account no longer exists")
				return
			}
			if user.Status != entity.UserStatusActive {
				logger.Warn("Inactive account attempted access",
					zap.String("user_id", userID.String()),
					zap.String("status", string(user.Status)),
				)
				utils.ResponseForbidden(w, "Account is "+string(user.Status))
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetSessionContext(ctx, session.ID)
			ctx = utils.SetTokenContext(ctx, rawToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin requires the authenticated role to be admin. Must run after Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != string(entity.UserRoleAdmin) {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
