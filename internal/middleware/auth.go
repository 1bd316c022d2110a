package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/o064/SWE-Back-End/internal/model"
	"github.com/o064/SWE-Back-End/internal/repository"
	"github.com/o064/SWE-Back-End/internal/response"
	"github.com/o064/SWE-Back-End/internal/service"
)

// ContextKeyUser is the Gin context key for the resolved caller.
const ContextKeyUser = "current_user"

// RequireAuth validates a bearer JWT, resolves the embedded subject to a
// current user record and attaches it to the request context.
//
// A token is rejected when the user no longer exists or when the user
// changed their password after the token was issued (coarse revocation via
// the password_changed_at timestamp).
func RequireAuth(authService *service.AuthService, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := authService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUserGone)
			return
		}

		if user.PasswordChangedAt != nil && claims.IssuedAt != nil &&
			claims.IssuedAt.Time.Before(*user.PasswordChangedAt) {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrPasswordChanged)
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the resolved caller from the Gin context.
// Returns nil when RequireAuth did not run.
func CurrentUser(c *gin.Context) *model.User {
	val, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := val.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
