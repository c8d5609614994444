package models

// Book is the canonical catalog record. Identities are server-assigned
// positive integers; a negative identity is a client-side placeholder that
// exists only between an optimistic create and its commit or rollback.
type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Year        string `json:"year,omitempty"`
}

// IsPlaceholder reports whether the book still carries a client-generated
// identity.
func (b Book) IsPlaceholder() bool {
	return b.ID < 0
}

// Payload carries the user-supplied fields of a create request.
type Payload struct {
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Genre       string `json:"genre,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Patch is a partial field replacement. Nil fields are left untouched; a
// non-nil pointer replaces the field, including replacement with "".
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Author      *string `json:"author,omitempty"`
	Description *string `json:"description,omitempty"`
	Genre       *string `json:"genre,omitempty"`
	Year        *string `json:"year,omitempty"`
}

// Apply returns a copy of the book with the patch applied. The identity is
// never touched by a patch.
func (p Patch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	if p.Year != nil {
		b.Year = *p.Year
	}
	return b
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Author == nil && p.Description == nil &&
		p.Genre == nil && p.Year == nil
}

// Fields returns the set fields as a map keyed by canonical field name,
// which is the wire shape of a partial update.
func (p Patch) Fields() map[string]any {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Author != nil {
		m["author"] = *p.Author
	}
	if p.Description != nil {
		m["description"] = *p.Description
	}
	if p.Genre != nil {
		m["genre"] = *p.Genre
	}
	if p.Year != nil {
		m["year"] = *p.Year
	}
	return m
}
