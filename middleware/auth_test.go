package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/inkpost/inkpost/models"
	"github.com/inkpost/inkpost/stores"
	"github.com/inkpost/inkpost/utils"
)

var testSecret = []byte("test-secret")

func newGuardedRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.GET("/protected", AuthRequired(db, testSecret), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": ctx.GetString(ContextUserIDKey)})
	})
	return r, db
}

func getProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_Admit(t *testing.T) {
	r, db := newGuardedRouter(t)

	user, err := stores.NewUserStore(db).Create("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	token, err := utils.GenerateToken(user.ID, testSecret, utils.TokenTTL)
	require.NoError(t, err)

	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID)
}

func TestAuthRequired_Reject(t *testing.T) {
	r, db := newGuardedRouter(t)

	user, err := stores.NewUserStore(db).Create("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	valid, err := utils.GenerateToken(user.ID, testSecret, utils.TokenTTL)
	require.NoError(t, err)
	expired, err := utils.GenerateToken(user.ID, testSecret, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateToken(user.ID, []byte("other-secret"), utils.TokenTTL)
	require.NoError(t, err)
	orphan, err := utils.GenerateToken("no-such-user", testSecret, utils.TokenTTL)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Token " + valid},
		{"garbled token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
		{"unknown subject", "Bearer " + orphan},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := getProtected(r, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
