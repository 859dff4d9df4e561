package delivery

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	authdomain "todolist-api/internal/auth/domain"
	authdto "todolist-api/internal/auth/dto"
	"todolist-api/internal/auth/repository"
	"todolist-api/internal/auth/usecase"
	"todolist-api/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, usecase.AuthUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:          "0123456789abcdef0123456789abcdef",
		JWTIssuer:          "todolist-api-test",
		JWTAudience:        "todolist-api-test",
		AccessTokenExpiry:  2 * time.Hour,
		RefreshTokenExpiry: 168 * time.Hour,
	}
	authUc := usecase.NewAuthUsecase(repository.NewUserRepository(db), repository.NewRefreshTokenRepository(db), cfg)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(authUc), func(c *gin.Context) {
		user := c.MustGet(ContextUserKey).(*authdomain.User)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	return r, authUc
}

func TestAuthMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	r, _ := newProtectedRouter(t)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	r, authUc := newProtectedRouter(t)

	if err := authUc.Register(&authdto.RegisterRequest{Username: "alice", Password: "password1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	tokens, err := authUc.Login(&authdto.LoginRequest{Username: "alice", Password: "password1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
}
