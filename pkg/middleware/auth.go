package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coursepulse/internal/models/db_models"
	"coursepulse/internal/repositories"
	"coursepulse/pkg/utils"
)

const currentUserKey = "current_user"

// AuthMiddleware is the access gate. It verifies the bearer token and then
// reloads the user record, so a block applied after the token was issued
// takes effect on the very next request.
func AuthMiddleware(users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeInvalidToken, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeInvalidToken, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, utils.CodeInternalError, "Internal server error")
			c.Abort()
			return
		}
		if user == nil {
			utils.RespondError(c, http.StatusForbidden, utils.CodeForbidden, "Forbidden")
			c.Abort()
			return
		}
		if user.Blocked {
			utils.RespondError(c, http.StatusForbidden, utils.CodeAccountBlocked, utils.BlockedAccountMessage)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole gates a route on the closed role enumeration. An empty role
// set is a no-op.
func RequireRole(roles ...db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, utils.CodeUnauthenticated, "Authentication required")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, utils.CodeInsufficientPrivilege, "Insufficient privileges")
		c.Abort()
	}
}

func CurrentUser(c *gin.Context) (*db_models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*db_models.User)
	return user, ok
}
