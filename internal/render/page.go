package render

import (
	"fmt"
	"html/template"
	"io"
)

// PageView is a full server-rendered listing page.
type PageView struct {
	Title      string
	PostType   string
	HeadLinks  template.HTML
	Items      template.HTML
	Pagination template.HTML
	AJAXURL    string
	Nonce      string
}

// Page writes the listing document to w.
func (r *Renderer) Page(w io.Writer, v PageView) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", v); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// Fragment marks the output of Registry.Render as safe HTML for embedding in
// a page.
func Fragment(s string) template.HTML {
	// #nosec G203 -- produced by html/template card renderers
	return template.HTML(s)
}
