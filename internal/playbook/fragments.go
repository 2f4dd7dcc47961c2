package playbook

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	fragmentsOnce sync.Once
	fragments     *template.Template
	fragmentsErr  error
)

var funcs = template.FuncMap{
	"inc":   func(i int) int { return i + 1 },
	"lower": strings.ToLower,
	"div": func(a, b int) int {
		if b == 0 {
			return 0
		}
		return a / b
	},
}

func loadFragments() (*template.Template, error) {
	fragmentsOnce.Do(func() {
		fragments, fragmentsErr = template.New("fragments").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
		if fragmentsErr != nil {
			fragmentsErr = fmt.Errorf("failed to parse body fragments: %w", fragmentsErr)
		}
	})
	return fragments, fragmentsErr
}

// render executes one body fragment. Every interpolated value goes through
// html/template escaping.
func render(name string, data any) (template.HTML, error) {
	t, err := loadFragments()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute fragment '%s': %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
