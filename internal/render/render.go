// Package render implements the HTML rendering layer: a template name plus a
// page context in, a complete response body out. Templates are embedded into
// the binary and parsed once at startup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mlevkin/feedboard/internal/logger"
	"github.com/mlevkin/feedboard/internal/validators"
	"github.com/mlevkin/feedboard/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every renderable page. Each page file defines the
// "content" block executed inside the shared layout.
var pageNames = []string{
	"register",
	"login",
	"profile",
	"feedback_form",
	"not_found",
	"server_error",
}

// Page is the context handed to every template execution.
type Page struct {
	// Title is the document title.
	Title string

	// SessionUser is the username of the authenticated session, empty for
	// anonymous requests. Drives the navigation block.
	SessionUser string

	// Flashes are the one-shot messages to show at the top of the page.
	Flashes []models.Flash

	// Form carries the submitted form struct so failed submissions re-render
	// with the user's input intact.
	Form any

	// Errors holds per-field validation messages for the re-rendered form.
	Errors validators.FieldErrors

	// FormError is a single form-level message (e.g. a uniqueness conflict)
	// not tied to one field.
	FormError string

	// Data carries page-specific view data (profile user, feedback list...).
	Data any
}

// Renderer renders named pages into HTTP responses.
type Renderer struct {
	pages  map[string]*template.Template
	logger *logger.Logger
}

// NewRenderer parses all embedded templates. Each page is parsed together
// with the shared layout so pages can be executed independently.
func NewRenderer(logger *logger.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))

	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS,
			"templates/layout.html",
			fmt.Sprintf("templates/%s.html", name))
		if err != nil {
			return nil, fmt.Errorf("error parsing template %q: %w", name, err)
		}
		pages[name] = tmpl
	}

	logger.Debug().Int("pages", len(pages)).Msg("templates parsed")
	return &Renderer{
		pages:  pages,
		logger: logger,
	}, nil
}

// Render executes the named page into the response with the given status
// code. The page is rendered into a buffer first so a template fault becomes
// a clean 500 instead of a half-written body.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.logger.Error().Str("page", name).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		r.logger.Err(err).Str("page", name).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
