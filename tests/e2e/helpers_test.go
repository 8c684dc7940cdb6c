//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raulk/clock"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/keepit-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/keepit-backend/internal/app"
	authpkg "github.com/heartmarshall/keepit-backend/internal/auth"
	"github.com/heartmarshall/keepit-backend/internal/config"
	"github.com/heartmarshall/keepit-backend/internal/domain"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Deps   *app.Deps
	Clock  *clock.Mock
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper). The clock starts at
// 2024-01-01 10:00 UTC.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))

	// 3. Configuration, as Load would leave it after validation.
	cfg := &config.Config{
		Server: config.ServerConfig{RateLimitPerMin: 10000},
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		},
		Scanner: config.ScannerConfig{
			Interval:    24 * time.Hour,
			ConfirmDays: 7,
			CatchUpDays: 2,
			Timezone:    "UTC",
			Location:    time.UTC,
		},
		Push: config.PushConfig{
			BufferSize:    16,
			WriteTimeout:  5 * time.Second,
			PingInterval:  time.Hour,
			StreamTimeout: time.Hour,
		},
	}

	// 4. Services and HTTP surface.
	deps := app.Wire(cfg, pool, clk, logger)
	handler, stop := app.NewHTTPHandler(cfg, deps, pool, clk, logger)
	t.Cleanup(stop)
	t.Cleanup(deps.Registry.Close)

	// 5. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Deps:   deps,
		Clock:  clk,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// tokenFor returns a valid access token for user.
func (ts *testServer) tokenFor(t *testing.T, user domain.User) string {
	t.Helper()
	tok, err := ts.jwt.GenerateAccessToken(user.ID, user.Role)
	require.NoError(t, err)
	return tok
}

// call sends a JSON request and decodes the response body into out when
// out is non-nil. It returns the status code.
func (ts *testServer) call(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// matching mirrors the REST representation of a matching.
type matching struct {
	ID             string  `json:"id"`
	Status         string  `json:"status"`
	PlaceID        *string `json:"placeId"`
	HostID         *string `json:"hostId"`
	Distance       int     `json:"distance"`
	HostCompleted  bool    `json:"hostCompleted"`
	GuestCompleted bool    `json:"guestCompleted"`
	StartDate      *string `json:"startDate"`
	ExpiryDate     *string `json:"expiryDate"`
}

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type notificationItem struct {
	ID           string `json:"id"`
	Message      string `json:"message"`
	IsRead       bool   `json:"isRead"`
	HoursElapsed int    `json:"hoursElapsed"`
}

// transition posts to /api/v1/matchings/{id}/{action} and requires 200.
func (ts *testServer) transition(t *testing.T, token, id, action string, body any) matching {
	t.Helper()
	var m matching
	status := ts.call(t, http.MethodPost, "/api/v1/matchings/"+id+"/"+action, token, body, &m)
	require.Equal(t, http.StatusOK, status, "%s should succeed", action)
	return m
}

// notifications lists the caller's notifications, newest first.
func (ts *testServer) notifications(t *testing.T, token string) []notificationItem {
	t.Helper()
	var items []notificationItem
	status := ts.call(t, http.MethodGet, "/api/v1/notifications", token, nil, &items)
	require.Equal(t, http.StatusOK, status)
	return items
}

// dialStream opens the live notification websocket and consumes the
// CONNECT frame. The token travels in the query string as a browser would.
func (ts *testServer) dialStream(t *testing.T, token string) *websocket.Conn {
	t.Helper()

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/v1/notifications/stream?access_token=" + url.QueryEscape(token)
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	frame := readStreamFrame(t, conn)
	require.Equal(t, "CONNECT", frame.Event)
	return conn
}

type streamFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func readStreamFrame(t *testing.T, conn *websocket.Conn) streamFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var frame streamFrame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

// openMatching creates a matching for the party's product as its guest.
func (ts *testServer) openMatching(t *testing.T, guestToken string, productID uuid.UUID) matching {
	t.Helper()
	var m matching
	status := ts.call(t, http.MethodPost, "/api/v1/matchings", guestToken,
		map[string]any{"productId": productID}, &m)
	require.Equal(t, http.StatusCreated, status)
	return m
}
