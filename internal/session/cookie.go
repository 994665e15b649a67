package session

import (
	"net/http"
	"net/url"
	"strings"
)

// CookieName is the admin session cookie.
const CookieName = "admin_session"

// SessionCookie builds the Set-Cookie value carrying a freshly signed token.
// The cookie lives exactly as long as the token itself.
func SessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(token),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TTL.Seconds()),
		Secure:   secure,
	}
}

// ClearCookie instructs the client to delete the session cookie. MaxAge -1
// serializes as Max-Age=0 on the wire.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Secure:   secure,
	}
}

// IsSecureRequest reports whether the client connection is TLS. Behind a
// reverse proxy the origin hop may be plaintext while the client hop is
// https, so an explicit X-Forwarded-Proto from the edge wins; otherwise the
// deployment-level flag decides.
func IsSecureRequest(r *http.Request, deploymentSecure bool) bool {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto == "https"
	}
	return deploymentSecure
}

// ParseCookies splits a raw Cookie header into name/value pairs. Values are
// URL-decoded; pairs without a "=" are skipped.
func ParseCookies(header string) map[string]string {
	out := make(map[string]string)
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, rawValue, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			value = rawValue
		}
		out[name] = value
	}
	return out
}

// TokenFromRequest extracts the session token from the request cookies.
// Returns "" when the cookie is absent.
func TokenFromRequest(r *http.Request) string {
	return ParseCookies(r.Header.Get("Cookie"))[CookieName]
}
