package es

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/models"
)

type fakeES struct {
	docs       map[string]json.RawMessage
	lastSearch map[string]any
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/" && r.Method == http.MethodGet:
		_, _ = io.WriteString(w, `{"version":{"number":"9.0.0"},"tagline":"You Know, for Search"}`)
	case strings.HasPrefix(r.URL.Path, "/products/_doc/") && r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.docs[strings.TrimPrefix(r.URL.Path, "/products/_doc/")] = body
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	case strings.HasPrefix(r.URL.Path, "/products/_doc/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(r.URL.Path, "/products/_doc/")
		if _, ok := f.docs[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"result":"not_found"}`)
			return
		}
		delete(f.docs, id)
		_, _ = io.WriteString(w, `{"result":"deleted"}`)
	case r.URL.Path == "/products/_search":
		_ = json.NewDecoder(r.Body).Decode(&f.lastSearch)
		hits := make([]map[string]any, 0, len(f.docs))
		for _, d := range f.docs {
			hits = append(hits, map[string]any{"_source": d})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"hits": map[string]any{"total": map[string]any{"value": len(hits)}, "hits": hits}})
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"unexpected request"}`)
	}
}

func newTestIndex(t *testing.T) (*ProductIndex, *fakeES) {
	t.Helper()
	fake := &fakeES{docs: map[string]json.RawMessage{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewProductIndex(client, "products"), fake
}

func TestProductIndex_IndexSearchDelete(t *testing.T) {
	idx, fake := newTestIndex(t)
	ctx := context.Background()

	prod := &models.Product{ID: 7, Name: "desk lamp", Description: "led", Price: 19.5, Category: "home", InStock: true}
	require.NoError(t, idx.IndexProduct(ctx, prod))
	require.Contains(t, fake.docs, "7")

	got, err := idx.Search(ctx, "lamp", 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *prod, got[0])

	mm := fake.lastSearch["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "lamp", mm["query"])
	assert.EqualValues(t, 0, fake.lastSearch["from"])
	assert.EqualValues(t, 10, fake.lastSearch["size"])

	require.NoError(t, idx.DeleteProduct(ctx, 7))
	assert.Empty(t, fake.docs)
	// already gone
	require.NoError(t, idx.DeleteProduct(ctx, 7))
}

func TestNewClient_Info(t *testing.T) {
	srv := httptest.NewServer(&fakeES{docs: map[string]json.RawMessage{}})
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), &config.Config{ESURL: srv.URL})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
