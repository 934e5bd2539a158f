// Package markup converts user-authored lightweight markup into an
// allow-listed HTML subset. Sanitization happens twice on every post: once
// at write time with the empty allow-list (PlainText) so stored content
// carries no markup payloads, and again at render time (Render) so a later
// allow-list change cannot resurrect anything already stored. Both passes
// are load-bearing.
package markup

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

var (
	// displayPolicy keeps only structural and inline-emphasis elements.
	// No attributes survive: href, src, style and event handlers are all
	// outside the allow-list.
	displayPolicy = bluemonday.NewPolicy().AllowElements(
		"p", "br",
		"b", "strong", "i", "em", "u",
		"ol", "ul", "li",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)

	// storagePolicy strips every element. Script and style bodies are
	// dropped along with their tags.
	storagePolicy = bluemonday.StrictPolicy()
)

// Render converts markdown to HTML and filters the result down to the
// allow-list. The output is safe to emit unescaped.
func Render(markdown string) string {
	html := blackfriday.Run([]byte(markdown),
		blackfriday.WithExtensions(blackfriday.CommonExtensions&^blackfriday.Autolink))
	return strings.TrimSpace(displayPolicy.Sanitize(string(html)))
}

// PlainText strips every HTML tag from s, keeping markdown punctuation
// intact. Applied to titles and bodies before they are persisted.
func PlainText(s string) string {
	return strings.TrimSpace(storagePolicy.Sanitize(s))
}
