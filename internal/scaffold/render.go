package scaffold

import (
	"fmt"
	"io/fs"
	"regexp"

	"github.com/SnacktimePro/skello/templates"
)

var placeholderPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// render reads an embedded template and substitutes ${name}
// placeholders. Only the braced form is recognized, so a bare $ in
// template text passes through untouched, and an unresolved
// placeholder stays literal rather than failing the run.
func render(name string, vars map[string]string) (string, error) {
	data, err := fs.ReadFile(templates.FS, name)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return expand(string(data), vars), nil
}

func expand(s string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := vars[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
