package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hxkit/hxkit/pkg/htmx"
)

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request sets HX-Redirect header and 200 status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.Redirect(rec, req, "/target")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/target", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("non-HTMX request uses standard HTTP redirect", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		htmx.Redirect(rec, req, "/target")

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/target", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get("HX-Redirect"))
	})

	t.Run("handles special characters in URL", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.Redirect(rec, req, "/search?q=test&page=1#results")

		assert.Equal(t, "/search?q=test&page=1#results", rec.Header().Get("HX-Redirect"))
	})
}

func TestRedirectWithStatus(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request ignores custom status and uses 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.RedirectWithStatus(rec, req, "/target", http.StatusMovedPermanently)

		assert.Equal(t, http.StatusOK, rec.Code, "HTMX redirect must use 200")
		assert.Equal(t, "/target", rec.Header().Get("HX-Redirect"))
	})

	t.Run("non-HTMX request respects custom status code", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)

		htmx.RedirectWithStatus(rec, req, "/target", http.StatusMovedPermanently)

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/target", rec.Header().Get("Location"))
	})
}

func TestRedirectBack(t *testing.T) {
	t.Parallel()

	t.Run("redirects to URL from redirect query parameter", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test?redirect=/dashboard", nil)
		req.Header.Set("HX-Request", "true")

		htmx.RedirectBack(rec, req, "/fallback")

		assert.Equal(t, "/dashboard", rec.Header().Get("HX-Redirect"))
	})

	t.Run("uses fallback when redirect parameter is missing", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.RedirectBack(rec, req, "/fallback")

		assert.Equal(t, "/fallback", rec.Header().Get("HX-Redirect"))
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("HTMX request gets HX-Refresh header", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("HX-Request", "true")

		htmx.Refresh(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
	})

	t.Run("non-HTMX request redirects to current URL", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/current?x=1", nil)

		htmx.Refresh(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/current?x=1", rec.Header().Get("Location"))
	})
}
