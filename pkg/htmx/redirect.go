package htmx

import (
	"net/http"
)

// Redirect performs a redirect for both HTMX and regular requests.
func Redirect(w http.ResponseWriter, r *http.Request, url string) {
	RedirectWithStatus(w, r, url, http.StatusFound)
}

// RedirectWithStatus performs a redirect with a custom status code.
func RedirectWithStatus(w http.ResponseWriter, r *http.Request, targetURL string, status int) {
	if IsHTMX(r) {
		// HTMX requires 200 status; the actual redirect happens client-side
		// via the HX-Redirect header.
		ClientRedirect(w.Header(), targetURL)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, targetURL, status)
}

// RedirectBack redirects to the URL in the "redirect" query parameter, or fallback if not present.
func RedirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	redirectURL := r.URL.Query().Get("redirect")
	if redirectURL == "" {
		redirectURL = fallback
	}

	Redirect(w, r, redirectURL)
}

// Refresh instructs the client to do a full page reload. For non-HTMX
// requests it redirects back to the current URL instead.
func Refresh(w http.ResponseWriter, r *http.Request) {
	if IsHTMX(r) {
		ClientRefresh(w.Header())
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, r.URL.String(), http.StatusFound)
}
