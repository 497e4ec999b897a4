package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/freightex/freightex/internal/service"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/models"
	"github.com/stretchr/testify/assert"
)

func executeAuthEndpoint(h *Handler, endpoint func(http.ResponseWriter, *http.Request), body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	endpoint(rr, req)
	return rr
}

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{ID: "u-1", Email: credentials.Email, Role: models.RoleCustomer}, nil
		},
		createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := executeAuthEndpoint(h, h.register, `{"email":"buyer@example.com","password":"secret-pass"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))
	assert.Contains(t, rr.Body.String(), `"token":"signed-token"`)
	assert.Contains(t, rr.Body.String(), `"email":"buyer@example.com"`)
	assert.NotContains(t, rr.Body.String(), "password", "credentials must not round-trip")
}

func TestRegister_MalformedJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	rr := executeAuthEndpoint(h, h.register, `{"email": `)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	auth := &mockAuthService{
		registerFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := executeAuthEndpoint(h, h.register, `{"email":"buyer@example.com","password":"secret-pass"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"email_taken"`)
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{ID: "u-1", Email: credentials.Email, Role: models.RoleShipper}, nil
		},
		createTokenFunc: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := executeAuthEndpoint(h, h.login, `{"email":"carrier@example.com","password":"secret-pass"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFunc: func(ctx context.Context, credentials models.Credentials) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	rr := executeAuthEndpoint(h, h.login, `{"email":"carrier@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"invalid_credentials"`)
}
