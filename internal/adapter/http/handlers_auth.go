package adapthttp

import (
	"errors"
	"net/http"

	"inkwell/internal/app"
)

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "register", registerPage{basePage: basePage{Title: "Register"}})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, tok, violations, err := s.auth.Register(r.Context(), username, password)
	if err != nil {
		s.softFail(w, r, err)
		return
	}
	if len(violations) > 0 {
		// Show every problem at once; the password is never echoed back.
		s.render(w, http.StatusUnprocessableEntity, "register", registerPage{
			basePage: basePage{Title: "Register", Errors: violations},
			Username: username,
		})
		return
	}

	s.log.Info().Str("username", user.Username).Int64("user_id", user.ID).Msg("user registered")
	s.setSessionCookie(w, tok)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := identityFrom(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, "login", loginPage{basePage: basePage{Title: "Log in"}})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")

	tok, err := s.auth.Login(r.Context(), username, r.PostFormValue("password"))
	if errors.Is(err, app.ErrInvalidCredentials) {
		// One generic message; never reveal which field was wrong.
		s.render(w, http.StatusUnauthorized, "login", loginPage{
			basePage: basePage{Title: "Log in", Errors: []string{"Invalid username/password."}},
			Username: username,
		})
		return
	}
	if err != nil {
		s.softFail(w, r, err)
		return
	}

	s.setSessionCookie(w, tok)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleLogout clears the cookie. The token itself stays valid until its
// embedded expiry; there is no server-side revocation.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
