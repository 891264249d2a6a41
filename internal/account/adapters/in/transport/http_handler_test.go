package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chargestation/internal/account/application/usecase"
	"chargestation/internal/account/domain"
	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/config"
	"chargestation/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	byUsername map[string]*domain.User
	byEmail    map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byUsername: map[string]*domain.User{},
		byEmail:    map[string]*domain.User{},
	}
}

func (m *memUserRepo) Create(ctx context.Context, u *domain.User) error {
	clone := *u
	m.byUsername[u.Username] = &clone
	m.byEmail[u.EmailAddress] = &clone
	return nil
}

func (m *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.byUsername[username], nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.byEmail[email], nil
}

func newAuthMux() (*http.ServeMux, *auth.JWTService) {
	log := logger.NewLogger("auth-service-test")
	jwtService := auth.NewJWTService(config.JWTConfig{Secret: "test_secret", ExpiryMinutes: 60})

	repo := newMemUserRepo()
	handler := NewHTTPHandler(
		usecase.NewRegisterService(repo, log),
		usecase.NewLoginService(repo, jwtService, log),
		log,
	)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return mux, jwtService
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func registration() map[string]string {
	return map[string]string{
		"firstName":    "Alice",
		"lastName":     "Miller",
		"dateOfBirth":  "1992-04-01",
		"username":     "alice",
		"emailAddress": "alice@example.com",
		"password":     "sup3rsecret",
		"role":         "driver",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	mux, jwtService := newAuthMux()

	rec := postJSON(t, mux, "/auth/register", registration())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Message.MsgError)
	assert.Equal(t, "Account successfully registered.", env.Message.MsgBody)

	rec = postJSON(t, mux, "/auth/login", map[string]string{
		"username": "alice",
		"password": "sup3rsecret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginEnv struct {
		Message struct {
			MsgBody struct {
				Token    string `json:"token"`
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"msgBody"`
			MsgError bool `json:"msgError"`
		} `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginEnv))
	assert.False(t, loginEnv.Message.MsgError)
	assert.Equal(t, "alice", loginEnv.Message.MsgBody.Username)
	assert.Equal(t, "driver", loginEnv.Message.MsgBody.Role)

	claims, err := jwtService.ValidateToken(loginEnv.Message.MsgBody.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "driver", claims.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	mux, _ := newAuthMux()

	rec := postJSON(t, mux, "/auth/register", registration())
	require.Equal(t, http.StatusCreated, rec.Code)

	dup := registration()
	dup["emailAddress"] = "other@example.com"
	rec = postJSON(t, mux, "/auth/register", dup)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Message.MsgError)
	assert.Equal(t, "Username or email address is already taken.", env.Message.MsgBody)
}

func TestRegisterInvalidRole(t *testing.T) {
	mux, _ := newAuthMux()

	bad := registration()
	bad["role"] = "superuser"
	rec := postJSON(t, mux, "/auth/register", bad)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	mux, _ := newAuthMux()

	rec := postJSON(t, mux, "/auth/register", registration())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, mux, "/auth/login", map[string]string{
		"username": "alice",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postJSON(t, mux, "/auth/login", map[string]string{
		"username": "ghost",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
