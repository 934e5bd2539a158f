package adapthttp

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"inkwell/internal/app"
	"inkwell/internal/domain"

	"github.com/julienschmidt/httprouter"
)

const sessionCookieName = "session"

func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.codec.TTL().Seconds()),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}

// render executes the named page template into a buffer before writing so
// a template failure produces a clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// requireUser redirects anonymous requests to the login page.
func requireUser(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := identityFrom(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	}
	return id, ok
}

// softFail handles post-mutation errors. Missing posts and ownership
// violations both redirect home without detail, so an outsider cannot tell
// a forbidden post from a nonexistent one. Anything else is a real failure.
func (s *Server) softFail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrPostNotFound) || errors.Is(err, app.ErrNotOwner) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("handler failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func postID(ps httprouter.Params) (int64, bool) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
