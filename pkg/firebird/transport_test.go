package firebird

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransport_PostsJSON(t *testing.T) {
	var gotMethod, gotPath, gotProject, gotContentType, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotProject = r.Header.Get(HeaderProjectID)
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	track, err := New("p1", ts.URL+"/", WithHTTPTimeout(2*time.Second))
	require.NoError(t, err)
	require.NoError(t, track.SetUserAttribute("age", 30, "integer"))

	result, err := track.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"success": true}, result)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/firebird/telcom/v1/save-user-details", gotPath)
	assert.Equal(t, "p1", gotProject)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `[{"paramName":"age","paramValue":30,"paramDatatype":"int"}]`, gotBody)
}

func TestHTTPTransport_ReturnsNonOKBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad"}`))
	}))
	defer ts.Close()

	tr := NewHTTPTransport(time.Second)
	resp, err := tr.Send(context.Background(), &Request{URL: ts.URL, Header: http.Header{}, Body: []byte(`[]`)})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `{"error":"bad"}`, string(resp.Body))
}

func TestHTTPTransport_UnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	track, err := New("p1", url, WithTransport(NewHTTPTransportWithClient(&http.Client{Timeout: time.Second})))
	require.NoError(t, err)
	track.SetCity("Paris")

	_, err = track.Execute(context.Background())
	assert.ErrorIs(t, err, ErrTransport)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, track.URL(), te.URL)
}
