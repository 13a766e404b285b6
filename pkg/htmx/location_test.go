package htmx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxkit/hxkit/pkg/htmx"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request sets HX-Location header", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.Location(rec, req, "/dashboard")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("HX-Location"))
	})

	t.Run("non-HTMX request falls back to HTTP redirect", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		htmx.Location(rec, req, "/dashboard")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})
}

func TestLocationTarget(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request encodes path and target as JSON", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.LocationTarget(rec, req, "/users", "#user-list")

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Location")), &decoded))
		assert.Equal(t, "/users", decoded["path"])
		assert.Equal(t, "#user-list", decoded["target"])
	})

	t.Run("non-HTMX request redirects to path", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		htmx.LocationTarget(rec, req, "/users", "#user-list")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/users", rec.Header().Get("Location"))
	})
}

func TestLocationWithOptions(t *testing.T) {
	t.Parallel()

	t.Run("serializes full option set", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.LocationWithOptions(rec, req, htmx.LocationOptions{
			Path:   "/dashboard",
			Target: "#main",
			Swap:   string(htmx.SwapInnerHTML),
		})

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(rec.Header().Get("HX-Location")), &decoded))
		assert.Equal(t, "/dashboard", decoded["path"])
		assert.Equal(t, "#main", decoded["target"])
		assert.Equal(t, "innerHTML", decoded["swap"])
	})

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.LocationWithOptions(rec, req, htmx.LocationOptions{Path: "/dashboard"})

		assert.Equal(t, `{"path":"/dashboard"}`, rec.Header().Get("HX-Location"))
	})
}
