package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alwanly/firebird-track/internal/config"
	authentication "github.com/Alwanly/firebird-track/pkg/auth"
	"github.com/Alwanly/firebird-track/pkg/database"
	"github.com/Alwanly/firebird-track/pkg/deps"
	"github.com/Alwanly/firebird-track/pkg/firebird"
	"github.com/Alwanly/firebird-track/pkg/logger"
	"github.com/Alwanly/firebird-track/pkg/middleware"
)

type testPublisher struct {
	messages []string
}

func (p *testPublisher) Publish(ctx context.Context, channel string, message string) error {
	p.messages = append(p.messages, message)
	return nil
}

func (p *testPublisher) Close() error { return nil }

func newTestApp(t *testing.T, cfg *config.ReceiverConfig) (*fiber.App, *testPublisher) {
	t.Helper()

	log := logger.NewNop()
	db, err := database.NewSQLiteDB("")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(log)})
	app.Use(requestid.New())
	app.Use(middleware.CanonicalLoggerMiddleware(log))

	pub := &testPublisher{}
	NewHandler(deps.App{
		Fiber:    app,
		Logger:   log,
		Database: db,
		Middleware: middleware.NewAuthMiddleware(middleware.SetBasicAuth(&authentication.BasicAuthTConfig{
			AdminUsername: "admin",
			AdminPassword: "secret",
		})),
		Pub: pub,
	}, cfg)

	return app, pub
}

func saveRequest(projectID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/firebird/telcom/v1/save-user-details", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if projectID != "" {
		req.Header.Set(firebird.HeaderProjectID, projectID)
	}
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t, &config.ReceiverConfig{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decode(t, resp)["status"])
}

func TestSaveUserDetails_OK(t *testing.T) {
	app, pub := newTestApp(t, &config.ReceiverConfig{EventChannel: "events"})

	body := `[{"paramName":"firstName","paramValue":"Jane","paramDatatype":"String"},{"paramName":"age","paramValue":30,"paramDatatype":"int"}]`
	resp, err := app.Test(saveRequest("p1", body))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode(t, resp)
	assert.Equal(t, true, out["success"])
	data := out["data"].(map[string]any)
	assert.NotEmpty(t, data["submissionId"])
	assert.Equal(t, float64(2), data["accepted"])
	assert.Len(t, pub.messages, 1)
}

func TestSaveUserDetails_Rejections(t *testing.T) {
	app, _ := newTestApp(t, &config.ReceiverConfig{AllowedProjectIDs: []string{"p1"}})

	tests := []struct {
		name      string
		projectID string
		body      string
		status    int
	}{
		{"missing project id", "", `[{"paramName":"city","paramValue":"x","paramDatatype":"String"}]`, http.StatusUnauthorized},
		{"unknown project id", "p2", `[{"paramName":"city","paramValue":"x","paramDatatype":"String"}]`, http.StatusForbidden},
		{"not json", "p1", `not json`, http.StatusBadRequest},
		{"empty array", "p1", `[]`, http.StatusBadRequest},
		{"bad datatype", "p1", `[{"paramName":"city","paramValue":"x","paramDatatype":"text"}]`, http.StatusBadRequest},
		{"bad email", "p1", `[{"paramName":"email","paramValue":"nope","paramDatatype":"String"}]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(saveRequest(tt.projectID, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, false, decode(t, resp)["success"])
		})
	}
}

func TestListSubmissions_RequiresAdmin(t *testing.T) {
	app, _ := newTestApp(t, &config.ReceiverConfig{})

	resp, err := app.Test(saveRequest(" p1 ", `[{"paramName":"city","paramValue":"Paris","paramDatatype":"String"}]`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/submissions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/submissions?projectId=p1&limit=5", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")))
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decode(t, resp)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["count"])
	subs := data["submissions"].([]any)
	first := subs[0].(map[string]any)
	assert.Equal(t, "p1", first["projectId"])
	params := first["params"].([]any)
	assert.Equal(t, "Paris", params[0].(map[string]any)["paramValue"])
}

// fiberTransport routes firebird requests into the app without a listener.
func fiberTransport(app *fiber.App) firebird.Transport {
	return firebird.TransportFunc(func(ctx context.Context, r *firebird.Request) (*firebird.Response, error) {
		req := httptest.NewRequest(http.MethodPost, r.URL, bytes.NewReader(r.Body))
		for k, v := range r.Header {
			req.Header[k] = v
		}
		resp, err := app.Test(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &firebird.Response{StatusCode: resp.StatusCode, Body: body}, nil
	})
}

func TestTrackAgainstReceiver(t *testing.T) {
	app, pub := newTestApp(t, &config.ReceiverConfig{AllowedProjectIDs: []string{"p1"}})

	track, err := firebird.New("p1", "http://receiver.local/", firebird.WithTransport(fiberTransport(app)))
	require.NoError(t, err)
	require.NoError(t, track.SetFirstName("Jane"))
	require.NoError(t, track.SetEmail("jane@x.com"))
	require.NoError(t, track.SetUserAttribute("tags", []string{"a", "b"}, "array"))

	result, err := track.Execute(context.Background())
	require.NoError(t, err)
	out := result.(map[string]any)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(3), out["data"].(map[string]any)["accepted"])
	assert.Len(t, pub.messages, 1)

	other, err := firebird.New("p2", "http://receiver.local", firebird.WithTransport(fiberTransport(app)))
	require.NoError(t, err)
	other.SetCity("Paris")
	_, err = other.Execute(context.Background())

	var se *firebird.SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusForbidden, se.StatusCode)
	assert.Contains(t, se.Body, "unknown project id")
}
