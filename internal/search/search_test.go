package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/rental_shop/internal/models"
)

type recorded struct {
	method, path, body string
}

type fakeES struct {
	mu   sync.Mutex
	reqs []recorded
}

func (f *fakeES) handler(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.reqs = append(f.reqs, recorded{r.Method, r.URL.Path, string(body)})
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/":
		_, _ = w.Write([]byte(`{"version":{"number":"9.0.0"}}`))
	case strings.HasSuffix(r.URL.Path, "/_search"):
		_, _ = w.Write([]byte(`{"hits":{"total":{"value":1},"hits":[{"_source":{"product_id":3,"product_name":"Drill","price":20,"availability":true}}]}}`))
	case r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/404"):
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"result":"not_found"}`))
	default:
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}
}

func (f *fakeES) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reqs[len(f.reqs)-1]
}

func newIndex(t *testing.T) (*Index, *fakeES) {
	t.Helper()
	fake := &fakeES{}
	srv := httptest.NewServer(http.HandlerFunc(fake.handler))
	t.Cleanup(srv.Close)

	idx, err := New(context.Background(), Config{URL: srv.URL, Index: "product"})
	require.NoError(t, err)
	return idx, fake
}

func TestIndexProduct(t *testing.T) {
	idx, fake := newIndex(t)

	err := idx.IndexProduct(context.Background(), models.Product{ProductID: 3, ProductName: "Drill", Price: 20})
	require.NoError(t, err)

	req := fake.last()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/product/_doc/3", req.path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.body), &doc))
	assert.Equal(t, "Drill", doc["product_name"])
}

func TestSearch(t *testing.T) {
	idx, fake := newIndex(t)

	total, prods, err := idx.Search(context.Background(), "dril", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, prods, 1)
	assert.Equal(t, uint(3), prods[0].ProductID)
	assert.Equal(t, "Drill", prods[0].ProductName)

	req := fake.last()
	assert.Equal(t, "/product/_search", req.path)
	assert.Contains(t, req.body, `"multi_match"`)
	assert.Contains(t, req.body, `"product_name^2"`)
}

func TestDeleteProduct_MissingIsNotAnError(t *testing.T) {
	idx, _ := newIndex(t)
	require.NoError(t, idx.DeleteProduct(context.Background(), 404))
	require.NoError(t, idx.DeleteProduct(context.Background(), 3))
}
