package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"recruitpro/internal/domain/entity"
)

// CardView is what a card renderer receives.
type CardView struct {
	*entity.Content
}

// CardRenderer writes the card for one content item.
type CardRenderer interface {
	RenderCard(w io.Writer, c *CardView) error
}

// CardFunc adapts a function to CardRenderer.
type CardFunc func(w io.Writer, c *CardView) error

func (f CardFunc) RenderCard(w io.Writer, c *CardView) error { return f(w, c) }

// Registry maps a content type to its card renderer. Types without an entry
// use the fallback.
type Registry struct {
	mu       sync.RWMutex
	cards    map[string]CardRenderer
	fallback CardRenderer
}

// NewRegistry returns a registry using fallback for unregistered types.
func NewRegistry(fallback CardRenderer) *Registry {
	return &Registry{cards: make(map[string]CardRenderer), fallback: fallback}
}

// Register sets the renderer for contentType, replacing any previous one.
func (r *Registry) Register(contentType string, cr CardRenderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cards[contentType] = cr
}

// Lookup returns the renderer for contentType, or the fallback.
func (r *Registry) Lookup(contentType string) CardRenderer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cr, ok := r.cards[contentType]; ok {
		return cr
	}
	return r.fallback
}

// Render renders every item with the renderer of its own type and returns
// the concatenated fragment.
func (r *Registry) Render(items []*entity.Content) (string, error) {
	var buf bytes.Buffer
	for _, item := range items {
		view := &CardView{Content: item}
		if err := r.Lookup(item.Type).RenderCard(&buf, view); err != nil {
			return "", fmt.Errorf("render card %d: %w", item.ID, err)
		}
	}
	return buf.String(), nil
}
