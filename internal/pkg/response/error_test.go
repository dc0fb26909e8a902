package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/apperror"
)

func render(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Error(c, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestError(t *testing.T) {
	t.Run("Application Error", func(t *testing.T) {
		code, body := render(t, fmt.Errorf("create: %w", apperror.New(http.StatusConflict, "already booked")))
		assert.Equal(t, http.StatusConflict, code)
		assert.Equal(t, "already booked", body.Error)
	})

	t.Run("Unexpected Error Is Hidden", func(t *testing.T) {
		code, body := render(t, errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "internal server error", body.Error)
	})
}

func TestNewPageResponse(t *testing.T) {
	page := NewPageResponse[string](nil, 2, 20, 41)

	assert.NotNil(t, page.Items)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
}
