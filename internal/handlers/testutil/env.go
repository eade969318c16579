package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/daylist-io/daylist/internal/api"
	"github.com/daylist-io/daylist/internal/app"
	iauth "github.com/daylist-io/daylist/internal/auth"
	dbtestutil "github.com/daylist-io/daylist/internal/database/testutil"
	"github.com/daylist-io/daylist/pkg/response"
)

// Env wires a fully routed application against an in-memory database for
// handler integration tests.
type Env struct {
	t      *testing.T
	DB     *gorm.DB
	Router *gin.Engine
	JWT    *iauth.JWTService
}

// Credentials holds a registered account and its plaintext password.
type Credentials struct {
	ID       string
	Email    string
	Password string
}

// NewEnv builds a test environment with migrations applied.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtestutil.MustOpenTestDB(t)

	jwtSvc, err := iauth.NewJWTService(iauth.JWTConfig{
		Secret:         "integration-test-secret",
		Issuer:         "daylist-test",
		AccessTokenTTL: 15 * time.Minute,
	})
	require.NoError(t, err)

	cfg := &app.Config{}
	cfg.Auth.JWT.Secret = "integration-test-secret"
	cfg.Monitoring.Prometheus.Enabled = false

	router, err := api.NewRouter(db, jwtSvc, cfg)
	require.NoError(t, err)

	return &Env{t: t, DB: db, Router: router, JWT: jwtSvc}
}

// Request performs an HTTP request against the router. A non-empty token is
// attached as a bearer credential.
func (e *Env) Request(method, path string, body any, token string) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

// RegisterUser creates an account through the public endpoint and returns its
// credentials.
func (e *Env) RegisterUser(email, password string) Credentials {
	e.t.Helper()

	resp := e.Request(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(e.t, http.StatusCreated, resp.Code, resp.Body.String())

	payload := DecodeResponse(e.t, resp)
	var user map[string]any
	DecodeInto(e.t, payload.Data, &user)
	id, _ := user["id"].(string)
	require.NotEmpty(e.t, id)

	return Credentials{ID: id, Email: email, Password: password}
}

// Login exchanges credentials for an access token.
func (e *Env) Login(email, password string) string {
	e.t.Helper()

	resp := e.Request(http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(e.t, http.StatusOK, resp.Code, resp.Body.String())

	payload := DecodeResponse(e.t, resp)
	var tokens map[string]any
	DecodeInto(e.t, payload.Data, &tokens)
	token, _ := tokens["access_token"].(string)
	require.NotEmpty(e.t, token)
	return token
}

// MustUser registers and logs in a fresh account in one step.
func (e *Env) MustUser(email, password string) (Credentials, string) {
	e.t.Helper()
	creds := e.RegisterUser(email, password)
	return creds, e.Login(email, password)
}

// DecodeResponse parses the standard response envelope.
func DecodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var payload response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

// DecodeInto re-marshals envelope data into a concrete type.
func DecodeInto(t *testing.T, data any, dest any) {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}
