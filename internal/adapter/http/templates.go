package adapthttp

import (
	"embed"
	"html/template"

	"inkwell/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

func parseTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// basePage carries the fields every page template needs. User is nil for
// anonymous viewers. Handlers only ever put sanitized or auto-escaped data
// into these structs; the one raw-HTML field (postPage.BodyHTML) is always
// produced by the markup pipeline.
type basePage struct {
	Title  string
	User   *domain.Identity
	Errors []string
}

type homePage struct {
	basePage
	Posts []domain.Post
}

type registerPage struct {
	basePage
	Username string
}

type loginPage struct {
	basePage
	Username string
}

type postPage struct {
	basePage
	Post     *domain.PostWithAuthor
	BodyHTML template.HTML
	IsOwner  bool
}

type postFormPage struct {
	basePage
	Heading    string
	Action     string
	TitleValue string
	BodyValue  string
}
