// Package adapthttp implements the HTTP adapter for the application. Pages
// are server-rendered; every request passes through the identity middleware
// exactly once before reaching a handler.
package adapthttp

import (
	"html/template"
	"net/http"

	"inkwell/internal/app"
	"inkwell/internal/token"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	auth  *app.AuthService
	posts *app.PostService
	codec *token.Codec
	log   zerolog.Logger
	tmpl  *template.Template
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, posts *app.PostService, codec *token.Codec, log zerolog.Logger) *Server {
	return &Server{
		auth:  auth,
		posts: posts,
		codec: codec,
		log:   log,
		tmpl:  parseTemplates(),
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/", s.handleHome)

	router.HandlerFunc(http.MethodGet, "/register", s.handleRegisterForm)
	router.HandlerFunc(http.MethodPost, "/register", s.handleRegister)
	router.HandlerFunc(http.MethodGet, "/login", s.handleLoginForm)
	router.HandlerFunc(http.MethodPost, "/login", s.handleLogin)
	router.HandlerFunc(http.MethodPost, "/logout", s.handleLogout)

	router.HandlerFunc(http.MethodGet, "/write", s.handleNewPostForm)
	router.HandlerFunc(http.MethodPost, "/posts", s.handleCreatePost)
	router.GET("/posts/:id", s.handleShowPost)
	router.GET("/posts/:id/edit", s.handleEditPostForm)
	router.POST("/posts/:id/edit", s.handleUpdatePost)
	router.POST("/posts/:id/delete", s.handleDeletePost)

	router.Handler(http.MethodGet, "/static/*filepath", http.FileServer(http.FS(staticFS)))

	return s.loggingMiddleware(s.identityMiddleware(router))
}
