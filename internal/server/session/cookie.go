package session

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gqlblog/internal/server/auth"
)

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Name     string
	Secret   []byte
	TTL      time.Duration
	Secure   bool
	Path     string
	SameSite http.SameSite
}

// CookieCodec reads and writes the signed session cookie. The value is an
// HS256 token wrapping the session id; the cookie is always HttpOnly.
type CookieCodec struct {
	opts CookieOptions
	now  func() time.Time
}

func NewCookieCodec(opts CookieOptions) *CookieCodec {
	if opts.Path == "" {
		opts.Path = "/"
	}
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return &CookieCodec{opts: opts, now: time.Now}
}

// SessionID returns the verified session id from r, or "" when the cookie is
// missing or fails verification.
func (c *CookieCodec) SessionID(r *http.Request) string {
	cookie, err := r.Cookie(c.opts.Name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	id, err := auth.GetSessionIDFromToken(cookie.Value, c.opts.Secret)
	if err != nil {
		return ""
	}
	return id
}

// Write emits Set-Cookie for s when it was issued or destroyed during the
// request. It must run before the response body is written.
func (c *CookieCodec) Write(w http.ResponseWriter, s *Session) error {
	switch {
	case s.Destroyed():
		http.SetCookie(w, c.cookie("", -1, time.Unix(0, 0)))
	case s.Issued():
		token, err := auth.GenerateSessionToken(s.ID(), c.opts.Secret, c.opts.TTL)
		if err != nil {
			return err
		}
		http.SetCookie(w, c.cookie(token, int(c.opts.TTL.Seconds()), c.now().Add(c.opts.TTL)))
	}
	return nil
}

func (c *CookieCodec) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     c.opts.Name,
		Value:    value,
		Path:     c.opts.Path,
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.opts.Secure,
		SameSite: c.opts.SameSite,
	}
}
