package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opensy-web/pkg/config"
	"opensy-web/pkg/rpcclient"
	"opensy-web/pkg/rpcclient/rpctest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func explorerConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Name: "explorer", DefaultLang: "ar"},
		Coin: config.CoinConfig{Name: "OpenSY", Symbol: "SYL"},
		Explorer: config.ExplorerConfig{
			LatestBlocks:    10,
			AddressPrefixes: []string{"syl1", "F", "3"},
			URL:             "https://explorer.opensy.net",
		},
	}
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	return do(r, httptest.NewRequest(http.MethodGet, target, nil))
}

func newExplorer(t *testing.T) (*gin.Engine, *rpctest.Node) {
	node := rpctest.NewNode(t)
	r, err := NewExplorerRouter(explorerConfig(), node.Client(t))
	require.NoError(t, err)
	return r, node
}

func TestHealth(t *testing.T) {
	r, _ := newExplorer(t)

	w := get(r, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"UP","version":"1.0.0","service":"explorer"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r, _ := newExplorer(t)

	w := get(r, "/health")
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = do(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestMetricsExposeRequests(t *testing.T) {
	r, _ := newExplorer(t)
	get(r, "/health")

	w := get(r, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{app="explorer",method="GET",path="/health",status="200"}`)
}

func TestSwaggerDoc(t *testing.T) {
	r, _ := newExplorer(t)

	w := get(r, "/swagger/doc.json")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/status")
}

func TestExplorerRoutes(t *testing.T) {
	r, node := newExplorer(t)
	node.Fail(rpcclient.MethodGetBlock, -5, "Block not found")

	w := get(r, "/api/block/"+strings.Repeat("0", 64))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Block not found"}`, w.Body.String())

	w = get(r, "/search?q=")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestStaticCaching(t *testing.T) {
	r, err := NewWebsiteRouter(&config.Config{
		App:      config.AppConfig{DefaultLang: "en"},
		Explorer: config.ExplorerConfig{URL: "https://explorer.opensy.net"},
	})
	require.NoError(t, err)

	w := get(r, "/static/css/style.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	etag := w.Header().Get("ETag")
	require.NotEmpty(t, etag)
	lastModified := w.Header().Get("Last-Modified")
	require.NotEmpty(t, lastModified)

	req := httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil)
	req.Header.Set("If-None-Match", etag)
	w = do(r, req)
	assert.Equal(t, http.StatusNotModified, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil)
	req.Header.Set("If-Modified-Since", lastModified)
	w = do(r, req)
	assert.Equal(t, http.StatusNotModified, w.Code)

	w = get(r, "/static/js/main.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, etag, w.Header().Get("ETag"))

	w = get(r, "/static/../view.go")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = get(r, "/static/nope.css")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebsiteRoutes(t *testing.T) {
	r, err := NewWebsiteRouter(&config.Config{
		App:      config.AppConfig{DefaultLang: "en"},
		Explorer: config.ExplorerConfig{URL: "https://explorer.opensy.net"},
	})
	require.NoError(t, err)

	for _, path := range []string{"/", "/download", "/community", "/docs", "/docs?lang=ar"} {
		w := get(r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
	w := get(r, "/health")
	assert.Contains(t, w.Body.String(), `"service":"website"`)
}

func TestUnsupportedDefaultLanguage(t *testing.T) {
	cfg := explorerConfig()
	cfg.App.DefaultLang = "fr"
	node := rpctest.NewNode(t)

	_, err := NewExplorerRouter(cfg, node.Client(t))
	assert.Error(t, err)
}
