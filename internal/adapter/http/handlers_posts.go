package adapthttp

import (
	"fmt"
	"html/template"
	"net/http"

	"inkwell/internal/domain"
	"inkwell/internal/markup"

	"github.com/julienschmidt/httprouter"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	id, ok := identityFrom(r.Context())
	if !ok {
		s.render(w, http.StatusOK, "home", homePage{basePage: basePage{Title: "Welcome"}})
		return
	}

	posts, err := s.posts.ListByAuthor(r.Context(), id.UserID)
	if err != nil {
		s.softFail(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "home", homePage{
		basePage: basePage{Title: "Your posts", User: &id},
		Posts:    posts,
	})
}

func (s *Server) handleNewPostForm(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, "post_form", postFormPage{
		basePage: basePage{Title: "New post", User: &id},
		Heading:  "New post",
		Action:   "/posts",
	})
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := requireUser(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	post, violations, err := s.posts.Create(r.Context(), id.UserID, title, body)
	if err != nil {
		s.softFail(w, r, err)
		return
	}
	if len(violations) > 0 {
		s.render(w, http.StatusUnprocessableEntity, "post_form", postFormPage{
			basePage:   basePage{Title: "New post", User: &id, Errors: violations},
			Heading:    "New post",
			Action:     "/posts",
			TitleValue: title,
			BodyValue:  body,
		})
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", post.ID), http.StatusSeeOther)
}

func (s *Server) handleShowPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	pid, ok := postID(ps)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	post, err := s.posts.Get(r.Context(), pid)
	if err != nil {
		s.softFail(w, r, err)
		return
	}

	id, authed := identityFrom(r.Context())
	var viewer *domain.Identity
	if authed {
		viewer = &id
	}
	s.render(w, http.StatusOK, "post", postPage{
		basePage: basePage{Title: post.Title, User: viewer},
		Post:     post,
		// Read-time sanitization pass; the body was already stripped of
		// raw HTML when it was stored.
		BodyHTML: template.HTML(markup.Render(post.Body)),
		IsOwner:  authed && id.UserID == post.AuthorID,
	})
}

func (s *Server) handleEditPostForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := requireUser(w, r)
	if !ok {
		return
	}
	pid, ok := postID(ps)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	post, err := s.posts.GetForEdit(r.Context(), id.UserID, pid)
	if err != nil {
		s.softFail(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "post_form", postFormPage{
		basePage:   basePage{Title: "Edit post", User: &id},
		Heading:    "Edit post",
		Action:     fmt.Sprintf("/posts/%d/edit", post.ID),
		TitleValue: post.Title,
		BodyValue:  post.Body,
	})
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := requireUser(w, r)
	if !ok {
		return
	}
	pid, ok := postID(ps)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	violations, err := s.posts.Update(r.Context(), id.UserID, pid, title, body)
	if err != nil {
		s.softFail(w, r, err)
		return
	}
	if len(violations) > 0 {
		s.render(w, http.StatusUnprocessableEntity, "post_form", postFormPage{
			basePage:   basePage{Title: "Edit post", User: &id, Errors: violations},
			Heading:    "Edit post",
			Action:     fmt.Sprintf("/posts/%d/edit", pid),
			TitleValue: title,
			BodyValue:  body,
		})
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/posts/%d", pid), http.StatusSeeOther)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, ok := requireUser(w, r)
	if !ok {
		return
	}
	pid, ok := postID(ps)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := s.posts.Delete(r.Context(), id.UserID, pid); err != nil {
		s.softFail(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
