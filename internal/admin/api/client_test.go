package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Dowlet20/ecom-admin/internal/admin/session"
	"github.com/Dowlet20/ecom-admin/internal/logging"
)

func testLogger() logging.Logger {
	return logging.Setup(logging.EnvProd, io.Discard)
}

func testStore(t *testing.T, token string) *session.Store {
	t.Helper()
	s := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if token != "" {
		require.NoError(t, s.Set(token))
	}
	return s
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.URL, 5*time.Second, testStore(t, "tok-1"), testLogger())
	require.NoError(t, c.GetJSON(context.Background(), "/markets", nil))
	require.Equal(t, "Bearer tok-1", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.URL, 5*time.Second, testStore(t, ""), testLogger())
	require.NoError(t, c.GetJSON(context.Background(), "/markets", nil))
	require.Empty(t, gotAuth)
	require.False(t, sawHeader)
}

func TestClient_401ClearsSessionFiresHookAndRejects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	store := testStore(t, "tok-1")
	c := New(ts.URL, ts.URL, 5*time.Second, store, testLogger())

	hookFired := false
	c.OnSessionExpired(func() {
		hookFired = true
		// The store must already be cleared when the hook runs.
		require.False(t, store.Authenticated())
	})

	err := c.GetJSON(context.Background(), "/banners", nil)
	require.ErrorIs(t, err, ErrSessionExpired)
	require.True(t, hookFired)
	require.False(t, store.Authenticated())
}

func TestClient_NonOKCarriesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"name already taken"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.URL, 5*time.Second, testStore(t, "tok-1"), testLogger())
	err := c.Delete(context.Background(), "/api/superadmin/markets/1")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Equal(t, "name already taken", apiErr.Message)
	require.Equal(t, "name already taken", Message(err, "fallback"))
}

func TestClient_NonOKWithoutMessageUsesFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.URL, 5*time.Second, testStore(t, "tok-1"), testLogger())
	err := c.GetJSON(context.Background(), "/markets", nil)
	require.Error(t, err)
	require.Equal(t, "fallback", Message(err, "fallback"))
}

func TestClient_PutJSONSendsBody(t *testing.T) {
	var gotBody []byte
	var gotCT string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotCT = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, ts.URL, 5*time.Second, testStore(t, "tok-1"), testLogger())
	err := c.PutJSON(context.Background(), "/api/superadmin/users/5", map[string]bool{"verified": true}, nil)
	require.NoError(t, err)
	require.Equal(t, "application/json", gotCT)
	require.JSONEq(t, `{"verified":true}`, string(gotBody))
}

func TestClient_NetworkErrorWrapped(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	c := New(ts.URL, ts.URL, time.Second, testStore(t, "tok-1"), testLogger())
	err := c.GetJSON(context.Background(), "/markets", nil)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrSessionExpired))
}

func TestClient_ImageURL(t *testing.T) {
	c := New("http://api.example", "http://img.example/", time.Second, testStore(t, ""), testLogger())

	require.Equal(t, "http://img.example/uploads/a.png", c.ImageURL("/uploads/a.png"))
	require.Equal(t, "http://img.example/uploads/a.png", c.ImageURL("uploads/a.png"))
	require.Equal(t, "", c.ImageURL(""))
}
