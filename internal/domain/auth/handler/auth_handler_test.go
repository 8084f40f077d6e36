package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social_feed/internal/domain/auth/model"
	"social_feed/internal/domain/auth/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
	service.AuthService
}

func (m *MockAuthService) SignUp(ctx context.Context, params model.SignUpParams) (*model.AuthResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func (m *MockAuthService) SignIn(ctx context.Context, params model.SignInParams) (*model.AuthResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AuthResult), args.Error(1)
}

func newRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)
	r := gin.New()
	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
	return r
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("Invalid email", func(t *testing.T) {
		svc := new(MockAuthService)

		w := post(newRouter(svc), "/auth/signup", `{"email":"nope","password":"secret1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})

	t.Run("Taken", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("SignUp", mock.Anything, model.SignUpParams{Email: "neo@example.com", Password: "secret1"}).
			Return(nil, service.ErrEmailTaken)

		w := post(newRouter(svc), "/auth/signup", `{"email":"neo@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("SignIn", mock.Anything, model.SignInParams{Email: "neo@example.com", Password: "bad"}).
		Return(nil, service.ErrInvalidCredentials)
	svc.On("SignIn", mock.Anything, model.SignInParams{Email: "neo@example.com", Password: "secret1"}).
		Return(&model.AuthResult{Account: model.Account{ID: "u-1"}, AccessToken: "tok"}, nil)

	r := newRouter(svc)

	w := post(r, "/auth/signin", `{"email":"neo@example.com","password":"bad"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid login credentials")

	w = post(r, "/auth/signin", `{"email":"neo@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"accessToken":"tok"`)
}
