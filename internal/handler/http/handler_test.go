package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/notekeep/go-note-keeper/internal/config"
	"github.com/notekeep/go-note-keeper/internal/logger"
	"github.com/notekeep/go-note-keeper/internal/service"
	"github.com/notekeep/go-note-keeper/models"
)

func testConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-note-keeper",
		TokenDuration: time.Hour,
		Environment:   "development",
	}
}

// sessionAuth returns an auth mock whose ParseToken accepts exactly
// "valid-token" and resolves it to the given identity. Used by tests that
// exercise protected routes.
func sessionAuth(userID int64, username string) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: userID, Username: username}, nil
		},
	}
}

// newTestHandler builds a Handler around the provided service mocks; nil
// mocks stay nil and panic when reached, which flags unexpected calls.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// doRequest routes the request through the full middleware chain.
func doRequest(t *testing.T, h *Handler, method, target, body string, withSession bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if withSession {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "valid-token"})
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(&service.Services{}, testConfig(), logger.Nop())
	require.NotNil(t, h)
	require.NotNil(t, h.Init())
}
