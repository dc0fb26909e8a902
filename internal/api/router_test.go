package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/auth"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/user"
)

type stubUserService struct {
	user.Service
	users map[string]*user.User
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func TestRouterGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)

	memberID := uuid.NewString()
	retiredStaffID := uuid.NewString()
	users := &stubUserService{users: map[string]*user.User{
		memberID:       {ID: memberID, Username: "alice", IsActive: true},
		retiredStaffID: {ID: retiredStaffID, Username: "bob", IsActive: false, IsStaff: true},
	}}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRouter(Config{
		Logger:      zap.New(core),
		UserService: users,
		JWTManager:  jwtManager,
	})

	tokenFor := func(id string) string {
		token, err := jwtManager.GenerateAccessToken(id)
		require.NoError(t, err)
		return token
	}

	call := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("Health Check", func(t *testing.T) {
		w := call(http.MethodGet, "/healthz", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bookings Require Authentication", func(t *testing.T) {
		w := call(http.MethodGet, "/v1/bookings", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Auditorium Management: Permission Denied (Regular User)", func(t *testing.T) {
		w := call(http.MethodPost, "/v1/auditoriums", tokenFor(memberID))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Auditorium Management: Permission Denied (Inactive Staff)", func(t *testing.T) {
		w := call(http.MethodDelete, "/v1/auditoriums/"+uuid.NewString(), tokenFor(retiredStaffID))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Confirm Booking: Permission Denied (Regular User)", func(t *testing.T) {
		w := call(http.MethodPost, "/v1/bookings/"+uuid.NewString()+"/confirm", tokenFor(memberID))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Auditorium Management: Unknown User", func(t *testing.T) {
		w := call(http.MethodPost, "/v1/auditoriums", tokenFor(uuid.NewString()))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Requests Are Logged By Status", func(t *testing.T) {
		warnings := logs.FilterMessage("request").FilterField(zap.Int("status", http.StatusForbidden))
		assert.NotZero(t, warnings.Len())
		for _, e := range warnings.All() {
			assert.Equal(t, zapcore.WarnLevel, e.Level)
		}

		ok := logs.FilterMessage("request").FilterField(zap.Int("status", http.StatusOK))
		require.Equal(t, 1, ok.Len())
		assert.Equal(t, zapcore.InfoLevel, ok.All()[0].Level)
	})
}
