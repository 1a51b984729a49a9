package templates

import (
	"errors"
	"io/fs"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// GoStore expands text/template templates loaded from a filesystem. The
// slim-sprig function map is available to every template. text/template is
// used rather than html/template because table fragments and cid references
// arrive pre-rendered and must pass through unescaped.
type GoStore struct {
	fsys fs.FS
}

var _ Store = &GoStore{}

// NewGoStore builds a GoStore reading named templates from the given
// filesystem. The filesystem may be nil for a store that only expands inline
// sources.
func NewGoStore(fsys fs.FS) *GoStore {
	return &GoStore{fsys: fsys}
}

// Render loads the named template file and expands it.
func (s *GoStore) Render(name string, vars map[string]any) (string, error) {
	if s.fsys == nil {
		return "", &NotFoundError{Name: name}
	}

	src, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Name: name}
		}
		return "", &RenderError{Name: name, Err: err}
	}

	return s.render(name, string(src), vars)
}

// RenderString expands the given template source.
func (s *GoStore) RenderString(src string, vars map[string]any) (string, error) {
	return s.render(inlineName, src, vars)
}

func (s *GoStore) render(name, src string, vars map[string]any) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(src)
	if err != nil {
		return "", &RenderError{Name: name, Err: err}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, vars); err != nil {
		return "", &RenderError{Name: name, Err: err}
	}
	return out.String(), nil
}
