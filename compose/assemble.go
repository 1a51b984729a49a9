package compose

import (
	"bytes"

	"github.com/zostay/go-courier/message"
	"github.com/zostay/go-courier/message/header"
	"github.com/zostay/go-courier/message/transfer"
)

// Assembly collects the resolved pieces of one message: up to one text part,
// up to one HTML part, the inline resources the HTML references, and any
// attachments. All fields are call-local; an Assembly is never reused.
type Assembly struct {
	Text        *message.Opaque
	HTML        *message.Opaque
	Resources   *Registry
	Attachments []*Attachment
}

// NewAssembly returns an empty assembly with a fresh resource registry.
func NewAssembly() *Assembly {
	return &Assembly{Resources: NewRegistry()}
}

// Attach resolves a logical attachment input and adds it to the assembly.
func (a *Assembly) Attach(filename string, src Source) error {
	att, err := Resolve(filename, src)
	if err != nil {
		return err
	}
	a.Attachments = append(a.Attachments, att)
	return nil
}

// resourcePart builds the MIME leaf for an inline resource.
func resourcePart(res *Resource) *message.Opaque {
	m := &message.Opaque{Reader: bytes.NewReader(res.Payload)}
	m.SetMediaType(res.MediaType)
	m.SetContentID(res.ContentID)
	m.SetPresentation("inline")
	if te := transfer.Select(res.Payload); te != transfer.None {
		m.SetTransferEncoding(te)
	}
	return m
}

// tree builds the part tree for the collected pieces:
//
//	multipart/mixed        - only when attachments exist
//	  multipart/alternative - only when both text and HTML exist
//	    text
//	    multipart/related   - only when HTML has inline resources
//	      html
//	      resource...
//	  attachment...
//
// Every layer is elided when it would hold a single child, so a text-only
// message is just its text part. The result is nil when there is no content
// at all.
func (a *Assembly) tree() message.Generic {
	var html message.Generic
	if a.HTML != nil {
		html = a.HTML
		if a.Resources.Len() > 0 {
			parts := make([]message.Part, 0, a.Resources.Len()+1)
			parts = append(parts, a.HTML)
			for _, res := range a.Resources.Resources() {
				parts = append(parts, resourcePart(res))
			}
			html = message.MultipartRelated(parts...)
		}
	}

	var body message.Generic
	switch {
	case a.Text != nil && html != nil:
		// text first so readers preferring the last supported part pick HTML
		body = message.MultipartAlternative(a.Text, html)
	case a.Text != nil:
		body = a.Text
	case html != nil:
		body = html
	}

	if len(a.Attachments) == 0 {
		return body
	}

	parts := make([]message.Part, 0, len(a.Attachments)+1)
	if body != nil {
		parts = append(parts, body)
	}
	for _, att := range a.Attachments {
		parts = append(parts, att.Part())
	}
	return message.MultipartMixed(parts...)
}

// Assemble builds the finished message tree and grafts the given envelope
// header (from, recipients, subject, and friends) onto its root, ahead of
// the root's own content fields. It fails with ErrEmptyMessage when the
// assembly holds no content at all.
func (a *Assembly) Assemble(envelope *header.Header) (message.Generic, error) {
	root := a.tree()
	if root == nil {
		return nil, ErrEmptyMessage
	}

	rh := root.GetHeader()
	merged := envelope.Clone()
	for _, name := range rh.Names() {
		for _, body := range rh.GetAll(name) {
			merged.Add(name, body)
		}
	}
	*rh = *merged

	return root, nil
}
