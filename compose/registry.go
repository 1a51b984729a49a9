package compose

import (
	"bytes"

	"github.com/google/uuid"
)

// cidDomain is the right-hand side of generated content identifiers.
const cidDomain = "go-courier"

// Resource is a binary payload embedded in a message and referenced from the
// HTML body by its content identifier. Resources belong to the message being
// assembled and do not outlive it.
type Resource struct {
	Key       string
	ContentID string
	MediaType string
	Payload   []byte
}

// Registry assigns stable content identifiers to inline resources and
// tracks their payloads for assembly. Identifiers are unique within one
// message; a Registry is built fresh per composed message and never shared.
type Registry struct {
	resources []*Resource
	byKey     map[string]*Resource
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: map[string]*Resource{}}
}

// Embed registers a payload under the given logical key and returns the
// content identifier assigned to it. Registering the same key with the same
// payload again is idempotent and returns the identifier already assigned.
// Registering the same key with a different payload fails with
// DuplicateKeyError.
func (r *Registry) Embed(key string, payload []byte, mediaType string) (string, error) {
	if res, exists := r.byKey[key]; exists {
		if !bytes.Equal(res.Payload, payload) {
			return "", &DuplicateKeyError{Key: key}
		}
		return res.ContentID, nil
	}

	res := &Resource{
		Key:       key,
		ContentID: uuid.NewString() + "@" + cidDomain,
		MediaType: mediaType,
		Payload:   payload,
	}
	r.resources = append(r.resources, res)
	r.byKey[key] = res

	return res.ContentID, nil
}

// ContentID returns the content identifier assigned to the given logical
// key, if any.
func (r *Registry) ContentID(key string) (string, bool) {
	res, exists := r.byKey[key]
	if !exists {
		return "", false
	}
	return res.ContentID, true
}

// Resources returns the registered resources in registration order.
func (r *Registry) Resources() []*Resource {
	return r.resources
}

// Len returns the number of registered resources.
func (r *Registry) Len() int {
	return len(r.resources)
}
