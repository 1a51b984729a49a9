package compose

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/table"
	"github.com/zostay/go-courier/templates"
)

// Body is a rendition of the message content. The concrete kinds are
// TextBody and HTMLBody. Attach renders the body's content and records the
// finished part on the assembly.
type Body interface {
	Attach(a *Assembly, tables map[string]*table.Table, params map[string]any) error
}

// defaultStore expands inline sources when no store is configured. Inline
// content is always template-expanded so that image and table variables
// resolve even without a store.
var defaultStore = templates.NewLiquidStore(nil)

// expand renders body content through a store. The named template wins over
// inline content when both are set.
func expand(store templates.Store, name, content string, params map[string]any) (string, error) {
	if store == nil {
		store = defaultStore
	}
	if name != "" {
		return store.Render(name, params)
	}
	return store.RenderString(content, params)
}

// TextBody is the plain-text rendition of a message.
type TextBody struct {
	// Content is the inline template source for the body.
	Content string

	// TemplateName names a template in Store to use instead of Content.
	TemplateName string

	// Store expands the body content.
	Store templates.Store

	// Renderer renders embedded tables into monospaced fragments.
	Renderer table.TextRenderer
}

// Attach renders the text body and records it on the assembly. Each entry of
// tables is rendered to a text fragment and exposed to the template under
// its key.
func (b *TextBody) Attach(a *Assembly, tables map[string]*table.Table, params map[string]any) error {
	vars := maps.Clone(params)
	if vars == nil {
		vars = map[string]any{}
	}

	for _, key := range slices.Sorted(maps.Keys(tables)) {
		frag, err := b.Renderer.Render(tables[key], nil)
		if err != nil {
			return fmt.Errorf("rendering table %q: %w", key, err)
		}
		vars[key] = frag
	}

	content, err := expand(b.Store, b.TemplateName, b.Content, vars)
	if err != nil {
		return err
	}

	part := message.NewOpaque("text/plain", []byte(content))
	_ = part.SetCharset("utf-8")
	a.Text = part

	return nil
}

// Image is an inline image payload for an HTML body.
type Image struct {
	Data []byte

	// MediaType is the image's MIME type. Empty means image/png.
	MediaType string
}

// HTMLBody is the HTML rendition of a message, possibly with inline images
// and embedded tables.
type HTMLBody struct {
	// Content is the inline template source for the body.
	Content string

	// TemplateName names a template in Store to use instead of Content.
	TemplateName string

	// Store expands the body content.
	Store templates.Store

	// Renderer renders embedded tables into HTML fragments.
	Renderer table.HTMLRenderer

	// Images are embedded as inline resources. Each key becomes a template
	// variable holding an img element that references the embedded payload
	// by content identifier. A key that also names a table fails the attach
	// with VariableCollisionError.
	Images map[string]Image
}

// Attach embeds the body's images, renders its tables, expands the HTML
// content, and records the finished part on the assembly.
func (b *HTMLBody) Attach(a *Assembly, tables map[string]*table.Table, params map[string]any) error {
	for key := range tables {
		if _, clash := b.Images[key]; clash {
			return &VariableCollisionError{Key: key}
		}
	}

	vars := maps.Clone(params)
	if vars == nil {
		vars = map[string]any{}
	}

	for _, key := range slices.Sorted(maps.Keys(b.Images)) {
		img := b.Images[key]

		mt := img.MediaType
		if mt == "" {
			mt = "image/png"
		}

		cid, err := a.Resources.Embed(key, img.Data, mt)
		if err != nil {
			return err
		}
		vars[key] = fmt.Sprintf(`<img src="cid:%s">`, cid)
	}

	for _, key := range slices.Sorted(maps.Keys(tables)) {
		frag, err := b.Renderer.Render(tables[key], nil)
		if err != nil {
			return fmt.Errorf("rendering table %q: %w", key, err)
		}
		vars[key] = frag
	}

	content, err := expand(b.Store, b.TemplateName, b.Content, vars)
	if err != nil {
		return err
	}

	part := message.NewOpaque("text/html", []byte(content))
	_ = part.SetCharset("utf-8")
	a.HTML = part

	return nil
}
