package service

import (
	"embed"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/oops"

	"environews/internal/modules/site/domain"
	"environews/internal/shared/config"
)

//go:embed templates
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"fmtTime": func(t time.Time) string {
		return t.UTC().Format(updatedAtLayout)
	},
	"rfc3339": func(t time.Time) string {
		return t.UTC().Format(time.RFC3339)
	},
}

// Renderer projects the built context into static HTML pages. Text
// fields arrive tag-stripped but not escaped; html/template escaping
// covers that here.
type Renderer struct {
	cfg  *config.Config
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, oops.With("context", "parsing templates").Wrap(err)
	}
	return &Renderer{cfg: cfg, tmpl: tmpl}, nil
}

// categoryData is the data handed to the per-category template.
type categoryData struct {
	SiteName  string
	Nav       []domain.NavEntry
	UpdatedAt string
	Page      domain.Page
}

// Render writes the index page, one page per category, the crawler
// page, the stylesheet and the exported RSS digest into the output
// directory.
func (r *Renderer) Render(ctx *domain.Context) error {
	out := r.cfg.Site.OutputDir
	if err := os.MkdirAll(out, 0755); err != nil {
		return oops.With("output_dir", out).Wrap(err)
	}

	if err := r.renderFile(filepath.Join(out, "index.html"), "index.html", ctx); err != nil {
		return err
	}

	for _, page := range ctx.Pages {
		data := categoryData{
			SiteName:  ctx.SiteName,
			Nav:       ctx.Nav,
			UpdatedAt: ctx.UpdatedAt,
			Page:      page,
		}
		if err := r.renderFile(filepath.Join(out, page.Key+".html"), "category.html", data); err != nil {
			return err
		}
	}

	if err := r.renderFile(filepath.Join(out, "crawler.html"), "crawler.html", ctx); err != nil {
		return err
	}

	if err := r.copyStylesheet(out); err != nil {
		return err
	}

	if err := r.copyCrawlerReport(out); err != nil {
		return err
	}

	if err := ExportRSS(ctx, filepath.Join(out, "feed.xml")); err != nil {
		return err
	}

	slog.Info("Site rendered", "output_dir", out, "pages", len(ctx.Pages)+2)
	return nil
}

func (r *Renderer) renderFile(path, name string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return oops.With("path", path).Wrap(err)
	}
	defer f.Close()

	if err := r.tmpl.ExecuteTemplate(f, name, data); err != nil {
		return oops.With("path", path, "template", name).Wrap(err)
	}
	return nil
}

// copyCrawlerReport copies the crawl command's report next to the pages
// so the crawler page can link it relative to the site root. A missing
// report just means crawl has not run yet.
func (r *Renderer) copyCrawlerReport(out string) error {
	src := filepath.Join(r.cfg.Site.DataDir, "crawler.json")
	report, err := os.ReadFile(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return oops.With("path", src).Wrap(err)
	}
	path := filepath.Join(out, "crawler.json")
	if err := os.WriteFile(path, report, 0644); err != nil {
		return oops.With("path", path).Wrap(err)
	}
	return nil
}

func (r *Renderer) copyStylesheet(out string) error {
	css, err := templatesFS.ReadFile("templates/styles.css")
	if err != nil {
		return oops.With("context", "reading embedded stylesheet").Wrap(err)
	}
	path := filepath.Join(out, "styles.css")
	if err := os.WriteFile(path, css, 0644); err != nil {
		return oops.With("path", path).Wrap(err)
	}
	return nil
}
