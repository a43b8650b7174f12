package dashboard

import (
	"net/http"
	"net/url"
	"time"
)

// authCallback completes the login handoff: the external login service
// redirects here with a signed token which becomes the session cookie.
// Anything invalid bounces back to the login page with an error flag.
func (h *handlers) authCallback(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		h.redirectToLogin(w, r, "missing_token")
		return
	}

	var claims map[string]any
	if err := h.auth.Parse(token, &claims); err != nil {
		h.redirectToLogin(w, r, "invalid_token")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *handlers) redirectToLogin(w http.ResponseWriter, r *http.Request, reason string) {
	target := h.loginURL
	if u, err := url.Parse(target); err == nil {
		q := u.Query()
		q.Set("error", reason)
		u.RawQuery = q.Encode()
		target = u.String()
	}
	http.Redirect(w, r, target, http.StatusFound)
}
