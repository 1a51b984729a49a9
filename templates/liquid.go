package templates

import (
	"errors"
	"io/fs"

	"github.com/osteele/liquid"
)

// LiquidStore expands Liquid templates loaded from a filesystem.
type LiquidStore struct {
	fsys   fs.FS
	engine *liquid.Engine
}

var _ Store = &LiquidStore{}

// NewLiquidStore builds a LiquidStore reading named templates from the given
// filesystem. The filesystem may be nil for a store that only expands inline
// sources.
func NewLiquidStore(fsys fs.FS) *LiquidStore {
	return &LiquidStore{
		fsys:   fsys,
		engine: liquid.NewEngine(),
	}
}

// Render loads the named template file and expands it.
func (s *LiquidStore) Render(name string, vars map[string]any) (string, error) {
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

// RenderString expands the given Liquid source.
func (s *LiquidStore) RenderString(src string, vars map[string]any) (string, error) {
	return s.render(inlineName, src, vars)
}

func (s *LiquidStore) render(name, src string, vars map[string]any) (string, error) {
	out, err := s.engine.ParseAndRenderString(src, vars)
	if err != nil {
		return "", &RenderError{Name: name, Err: err}
	}
	return out, nil
}
