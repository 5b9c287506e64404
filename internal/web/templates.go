// Package web contains the HTTP server and HTML rendering for the browser interface.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"apptrack/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists every renderable page; each is parsed together with the layout.
var pageNames = []string{
	"index",
	"applications",
	"view_application",
	"add_application",
	"edit_application",
	"search",
	"jobs",
	"job_details",
	"analytics",
	"404",
	"500",
}

// Pages renders the HTML pages from the embedded templates.
type Pages struct {
	templates map[string]*template.Template
	logger    *slog.Logger
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"statusTitle": func(s store.Status) string {
			words := strings.Split(string(s), "_")
			for i, w := range words {
				if w != "" {
					words[i] = strings.ToUpper(w[:1]) + w[1:]
				}
			}
			return strings.Join(words, " ")
		},
		"statusClass": func(s store.Status) string {
			switch s {
			case store.StatusApplied:
				return "primary"
			case store.StatusScreening:
				return "info"
			case store.StatusInterviewScheduled:
				return "warning"
			case store.StatusInterviewed:
				return "secondary"
			case store.StatusOfferReceived, store.StatusAccepted:
				return "success"
			case store.StatusRejected:
				return "danger"
			case store.StatusWithdrawn:
				return "light"
			default:
				return "secondary"
			}
		},
		"fmtDate": func(v any) string {
			var t time.Time
			switch x := v.(type) {
			case time.Time:
				t = x
			case *time.Time:
				if x != nil {
					t = *x
				}
			}
			if t.IsZero() {
				return "N/A"
			}
			return t.Format("2006-01-02")
		},
		"fmtDateTime": func(t time.Time) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format("2006-01-02 15:04")
		},
		"shortID": func(id string) string {
			if len(id) > 8 {
				return id[:8]
			}
			return id
		},
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v)
		},
	}
}

// NewPages parses the embedded templates.
func NewPages(logger *slog.Logger) (*Pages, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(templateFuncs()).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Pages{templates: templates, logger: logger}, nil
}

// Render writes the named page. Rendering failures fall back to a plain 500.
func (p *Pages) Render(w http.ResponseWriter, status int, page string, data any) {
	t, ok := p.templates[page]
	if !ok {
		p.logger.Error("unknown template", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		p.logger.Error("failed to render template", "page", page, "error", err)
	}
}
