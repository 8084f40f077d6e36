package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"social_feed/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		code    int
		message string
	}{
		{"Unauthenticated", apperr.ErrUnauthenticated, http.StatusUnauthorized, ErrUnauthenticated, "User not authenticated"},
		{"Forbidden", apperr.New(apperr.ErrForbidden, "Not authorized to update this feed"), http.StatusForbidden, ErrNoPermission, "Not authorized to update this feed"},
		{"Conflict", apperr.New(apperr.ErrAlreadyExists, "Already liked this feed"), http.StatusConflict, ErrAlreadyExists, "Already liked this feed"},
		{"Domain rule", apperr.New(apperr.ErrDomainRule, "Not following this user"), http.StatusConflict, ErrDomainRule, "Not following this user"},
		{"Not found", fmt.Errorf("load feed: %w", gorm.ErrRecordNotFound), http.StatusNotFound, ErrNotFound, "Resource not found"},
		{"Missing feed reference", fmt.Errorf("like feed: %w", gorm.ErrForeignKeyViolated), http.StatusNotFound, ErrNotFound, "Resource not found"},
		{"Missing user reference", &pgconn.PgError{Code: "23503", Message: "insert or update on table \"follows\" violates foreign key constraint"}, http.StatusNotFound, ErrNotFound, "Resource not found"},
		{"Unknown", errors.New("connection reset"), http.StatusInternalServerError, ErrServerInternal, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}
