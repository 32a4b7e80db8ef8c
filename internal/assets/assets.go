package assets

import (
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

//go:embed styles/page.css
var pageStyle string

//go:embed templates/page.html
var pageFS embed.FS

var (
	pageOnce sync.Once
	pageTmpl *template.Template
	pageErr  error
)

// pageData fills templates/page.html.
type pageData struct {
	Style  template.CSS
	Width  int
	Height int
	Source template.URL
}

// loadPage parses the embedded page template once.
func loadPage() (*template.Template, error) {
	pageOnce.Do(func() {
		pageTmpl, pageErr = template.ParseFS(pageFS, "templates/page.html")
	})
	return pageTmpl, pageErr
}

// RenderSVGPage returns an HTML document of exactly width x height pixels
// showing svg, embedded as a base64 data URL, scaled to fit.
func RenderSVGPage(svg []byte, width, height int) (string, error) {
	tmpl, err := loadPage()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	data := pageData{
		Style:  template.CSS(pageStyle), // #nosec G203 -- embedded stylesheet
		Width:  width,
		Height: height,
		// Data URLs are rejected by html/template unless marked safe.
		Source: template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)), // #nosec G203 -- base64 payload cannot break out of the attribute
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return b.String(), nil
}
