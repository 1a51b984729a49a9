package templates

import (
	"fmt"
)

// Store resolves and expands templates. Implementations must be safe for
// concurrent use.
type Store interface {
	// Render loads the named template and expands it with the given
	// variables. It returns a NotFoundError if no template has that name
	// and a RenderError if expansion fails.
	Render(name string, vars map[string]any) (string, error)

	// RenderString expands the given template source with the given
	// variables. It returns a RenderError if expansion fails.
	RenderString(src string, vars map[string]any) (string, error)
}

// NotFoundError is returned by Store.Render when the named template does not
// exist in the store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template %q not found", e.Name)
}

// RenderError is returned when a template fails to parse or expand.
type RenderError struct {
	Name string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering template %q: %v", e.Name, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// inlineName is the template name reported in errors for inline sources.
const inlineName = "(inline)"
