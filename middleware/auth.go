package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkpost/inkpost/stores"
	"github.com/inkpost/inkpost/utils"
)

const (
	// ContextUserKey stores the authenticated *models.User in the Gin context.
	ContextUserKey = "current_user"
	// ContextUserIDKey stores the authenticated user's identity.
	ContextUserIDKey = "user_id"
)

// AuthRequired admits requests carrying a valid bearer token for an existing
// user and rejects everything else with 401: a missing or non-Bearer header,
// a token failing verification, or a token subject with no user record. It
// never mutates application state; admitted requests get the resolved user
// attached to the context.
func AuthRequired(db *gorm.DB, secret []byte) gin.HandlerFunc {
	users := stores.NewUserStore(db)

	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.Error(ctx, http.StatusUnauthorized, "Not authorized, no token")
			ctx.Abort()
			return
		}

		userID, err := utils.ParseToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, "Not authorized, token failed")
			ctx.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			utils.Error(ctx, http.StatusUnauthorized, "Not authorized, user not found")
			ctx.Abort()
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Set(ContextUserIDKey, user.ID)
		ctx.Next()
	}
}
