package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Dowlet20/ecom-admin/internal/admin/models"
)

type categoryServer struct {
	*httptest.Server

	listCalls   int
	postCalls   int
	deleteCalls int

	lastQuery      url.Values
	lastPostFields map[string]string
	lastPostFiles  map[string][]byte
}

func newCategoryServer(t *testing.T) *categoryServer {
	t.Helper()
	cs := &categoryServer{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		cs.listCalls++
		cs.lastQuery = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{
			"data": []models.Category{
				{ID: 1, Name: "Fruits", NameRu: "Фрукты", ThumbnailURL: "/uploads/c1.png"},
			},
			"total": 25,
		})
	})
	mux.HandleFunc("POST /api/superadmin/categories", func(w http.ResponseWriter, r *http.Request) {
		cs.postCalls++
		cs.lastPostFields, cs.lastPostFiles = readMultipart(t, r)
		json.NewEncoder(w).Encode(models.Category{ID: 2})
	})
	mux.HandleFunc("DELETE /api/superadmin/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		cs.deleteCalls++
		w.WriteHeader(http.StatusOK)
	})

	cs.Server = httptest.NewServer(mux)
	t.Cleanup(cs.Close)
	return cs
}

func newCategoriesScreen(t *testing.T, cs *categoryServer, confirm Confirmer) (*Categories, *captureNotifier) {
	t.Helper()
	notify := &captureNotifier{}
	return NewCategories(testClient(t, cs.Server), testLogger(), notify, confirm), notify
}

func TestCategories_FetchSendsPagination(t *testing.T) {
	cs := newCategoryServer(t)
	s, _ := newCategoriesScreen(t, cs, confirmYes)

	require.NoError(t, s.Fetch(context.Background()))
	require.Equal(t, "1", cs.lastQuery.Get("page"))
	require.Equal(t, "12", cs.lastQuery.Get("limit"))
	require.Equal(t, 3, s.TotalPages(), "25 categories at 12 per page")
}

func TestCategories_PageNavigationBounds(t *testing.T) {
	cs := newCategoryServer(t)
	s, _ := newCategoriesScreen(t, cs, confirmYes)
	require.NoError(t, s.Fetch(context.Background()))

	require.NoError(t, s.PrevPage(context.Background()))
	require.Equal(t, 1, s.Page(), "cannot go below the first page")

	require.NoError(t, s.NextPage(context.Background()))
	require.Equal(t, 2, s.Page())
	require.Equal(t, "2", cs.lastQuery.Get("page"))

	require.NoError(t, s.NextPage(context.Background()))
	require.NoError(t, s.NextPage(context.Background()))
	require.Equal(t, 3, s.Page(), "cannot go past the last page")
}

func TestCategories_CreateValidatesBeforeNetwork(t *testing.T) {
	cs := newCategoryServer(t)
	s, _ := newCategoriesScreen(t, cs, confirmYes)

	fieldErrs, err := s.Create(context.Background(), CategoryForm{Name: "Fruits"})
	require.NoError(t, err)
	require.Contains(t, fieldErrs, "name_ru")
	require.Zero(t, cs.postCalls)
}

func TestCategories_CreateWithOptionalThumbnail(t *testing.T) {
	cs := newCategoryServer(t)
	s, notify := newCategoriesScreen(t, cs, confirmYes)

	// Without a thumbnail.
	fieldErrs, err := s.Create(context.Background(), CategoryForm{Name: "Fruits", NameRu: "Фрукты"})
	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.Empty(t, cs.lastPostFiles)
	require.Equal(t, map[string]string{"name": "Fruits", "name_ru": "Фрукты"}, cs.lastPostFields)
	require.Equal(t, 1, cs.listCalls, "create re-fetches")
	require.Contains(t, notify.successes, "Category created successfully")
}

func TestCategories_DeleteConfirmPolicy(t *testing.T) {
	cs := newCategoryServer(t)
	s, _ := newCategoriesScreen(t, cs, confirmNo)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.Zero(t, cs.deleteCalls)

	s2, _ := newCategoriesScreen(t, cs, confirmYes)
	require.NoError(t, s2.Delete(context.Background(), 1))
	require.Equal(t, 1, cs.deleteCalls)
	require.Equal(t, 1, cs.listCalls)
}
