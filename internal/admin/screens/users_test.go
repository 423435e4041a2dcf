package screens

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dowlet20/ecom-admin/internal/admin/models"
)

type userServer struct {
	*httptest.Server

	listCalls   int
	deleteCalls int

	lastQuery  url.Values
	lastPut    map[string]bool
	lastPutCT  string
	listStatus int
}

func newUserServer(t *testing.T) *userServer {
	t.Helper()
	us := &userServer{listStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/superadmin/users", func(w http.ResponseWriter, r *http.Request) {
		us.listCalls++
		us.lastQuery = r.URL.Query()
		if us.listStatus != http.StatusOK {
			w.WriteHeader(us.listStatus)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []models.User{
				{ID: 1, FullName: "Ayna Berdiyewa", Phone: "+99365000001", Verified: true},
				{ID: 2, FullName: "Merdan Orazow", Phone: "+99365000002"},
			},
			"total": 45,
		})
	})
	mux.HandleFunc("PUT /api/superadmin/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		us.lastPutCT = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		us.lastPut = map[string]bool{}
		require.NoError(t, json.Unmarshal(body, &us.lastPut))
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("DELETE /api/superadmin/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		us.deleteCalls++
		w.WriteHeader(http.StatusOK)
	})

	us.Server = httptest.NewServer(mux)
	t.Cleanup(us.Close)
	return us
}

func newUsersScreen(t *testing.T, us *userServer, confirm Confirmer) (*Users, *captureNotifier) {
	t.Helper()
	notify := &captureNotifier{}
	return NewUsers(testClient(t, us.Server), testLogger(), notify, confirm), notify
}

func TestUsers_FetchSendsPagination(t *testing.T) {
	us := newUserServer(t)
	s, _ := newUsersScreen(t, us, confirmYes)

	require.NoError(t, s.Fetch(context.Background()))
	require.Equal(t, "1", us.lastQuery.Get("page"))
	require.Equal(t, "20", us.lastQuery.Get("limit"))
	require.False(t, us.lastQuery.Has("search"), "blank search must be omitted entirely")

	require.Len(t, s.Items(), 2)
	require.Equal(t, 3, s.TotalPages(), "45 users at 20 per page")
}

func TestUsers_SearchResetsToFirstPage(t *testing.T) {
	us := newUserServer(t)
	s, _ := newUsersScreen(t, us, confirmYes)

	require.NoError(t, s.Fetch(context.Background()))
	require.NoError(t, s.NextPage(context.Background()))
	require.Equal(t, 2, s.Page())

	require.NoError(t, s.SetSearch(context.Background(), "merdan"))
	require.Equal(t, 1, s.Page())
	require.Equal(t, "merdan", us.lastQuery.Get("search"))
}

func TestUsers_WhitespaceSearchOmitted(t *testing.T) {
	us := newUserServer(t)
	s, _ := newUsersScreen(t, us, confirmYes)

	require.NoError(t, s.SetSearch(context.Background(), "   "))
	require.False(t, us.lastQuery.Has("search"))
}

func TestUsers_SetVerifiedPutsJSONAndRefetches(t *testing.T) {
	us := newUserServer(t)
	s, notify := newUsersScreen(t, us, confirmYes)
	require.NoError(t, s.Fetch(context.Background()))
	require.Equal(t, 1, us.listCalls)

	require.NoError(t, s.SetVerified(context.Background(), 2, true))
	require.Contains(t, us.lastPutCT, "application/json")
	require.Equal(t, map[string]bool{"verified": true}, us.lastPut)
	require.Equal(t, 2, us.listCalls, "verification change re-fetches the page")
	require.Contains(t, notify.successes, "User verified successfully")
	require.Zero(t, s.Updating())
}

func TestUsers_SetVerifiedFalse(t *testing.T) {
	us := newUserServer(t)
	s, notify := newUsersScreen(t, us, confirmYes)

	require.NoError(t, s.SetVerified(context.Background(), 1, false))
	require.Equal(t, map[string]bool{"verified": false}, us.lastPut)
	require.Contains(t, notify.successes, "User unverified successfully")
}

func TestUsers_DeleteConfirmPolicy(t *testing.T) {
	us := newUserServer(t)
	s, _ := newUsersScreen(t, us, confirmNo)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.Zero(t, us.deleteCalls)

	s2, _ := newUsersScreen(t, us, confirmYes)
	require.NoError(t, s2.Delete(context.Background(), 1))
	require.Equal(t, 1, us.deleteCalls)
	require.Equal(t, 1, us.listCalls, "confirmed delete re-fetches")
}
