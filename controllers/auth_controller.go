package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inkpost/inkpost/middleware"
	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/stores"
	"github.com/inkpost/inkpost/utils"
)

// AuthController handles registration, login and the authenticated profile
// lookup. Both register and login answer with a fresh one-hour bearer token.
type AuthController struct {
	users  *stores.UserStore
	secret []byte
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB, secret []byte) *AuthController {
	return &AuthController{users: stores.NewUserStore(db), secret: secret}
}

// Register creates a local account and issues a token for it.
func (a *AuthController) Register(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Please enter all fields")
		return
	}

	user, err := a.users.Create(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, stores.ErrMissingUserFields):
			utils.Error(ctx, http.StatusBadRequest, "Please enter all fields")
		case errors.Is(err, stores.ErrEmailTaken):
			utils.Error(ctx, http.StatusBadRequest, "User already exists")
		default:
			utils.Error(ctx, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	token, err := utils.GenerateToken(user.ID, a.secret, utils.TokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// Login verifies credentials and issues a token. An unknown email and a wrong
// password take the same path and produce the same response, so callers
// cannot probe which emails are registered.
func (a *AuthController) Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	user, err := a.users.FindByEmail(req.Email)
	if err != nil || !a.users.VerifySecret(user, req.Password) {
		utils.Error(ctx, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, a.secret, utils.TokenTTL)
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, "failed to generate token")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// Me returns the authenticated user's profile, resolved by AuthRequired.
func (a *AuthController) Me(ctx *gin.Context) {
	v, exists := ctx.Get(middleware.ContextUserKey)
	user, ok := v.(*models.User)
	if !exists || !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Not authorized")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
