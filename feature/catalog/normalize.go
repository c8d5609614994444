package catalog

import (
	"strings"

	"shelfd/core/utils"
	"shelfd/feature/catalog/models"
)

// aliasSpec declares how one canonical field resolves from a raw record:
// the first alias key present wins, otherwise the fallback applies.
type aliasSpec struct {
	aliases  []string
	fallback string
}

// fieldAliases is the normalization table. Remote resources and imported
// catalogs disagree on field names (some use Portuguese keys, some reuse
// the generic "body" for the description), this table is the single place
// that disagreement is resolved.
var fieldAliases = map[string]aliasSpec{
	"id":          {aliases: []string{"id", "_id"}},
	"title":       {aliases: []string{"title", "titulo"}},
	"author":      {aliases: []string{"author", "autor"}},
	"genre":       {aliases: []string{"genre", "genero", "tipo"}},
	"year":        {aliases: []string{"year", "ano", "publicationYear"}},
	"description": {aliases: []string{"body", "descricao", "description"}},
}

// genreAliases maps raw genre strings onto canonical genres. Canonical
// values are never keys, so canonicalization is idempotent. Unknown genres
// pass through untouched.
var genreAliases = map[string]string{
	"sci-fi":   "science-fiction",
	"scifi":    "science-fiction",
	"fantasia": "fantasy",
	"terror":   "horror",
	"aventura": "adventure",
	"romanze":  "romance",
}

// CanonicalGenre maps a raw genre string to its canonical form.
func CanonicalGenre(raw string) string {
	g := strings.TrimSpace(raw)
	if canon, ok := genreAliases[strings.ToLower(g)]; ok {
		return canon
	}
	return g
}

// resolve returns the first alias value present in the raw record.
func resolve(raw map[string]any, spec aliasSpec) (any, bool) {
	for _, key := range spec.aliases {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return spec.fallback, false
}

func resolveString(raw map[string]any, field string) string {
	v, _ := resolve(raw, fieldAliases[field])
	return strings.TrimSpace(utils.ToString(v))
}

// Normalize maps an arbitrary externally-sourced record into the canonical
// book shape. It reports false when the input is not a well-formed object.
// Normalizing an already canonical record yields an equal record.
func Normalize(raw any) (models.Book, bool) {
	m, ok := raw.(map[string]any)
	if !ok || m == nil {
		return models.Book{}, false
	}

	var id int
	if v, ok := resolve(m, fieldAliases["id"]); ok {
		id = utils.ToInt(v)
	}

	return models.Book{
		ID:          id,
		Title:       resolveString(m, "title"),
		Author:      resolveString(m, "author"),
		Description: resolveString(m, "description"),
		Genre:       CanonicalGenre(resolveString(m, "genre")),
		Year:        resolveString(m, "year"),
	}, true
}

// NormalizeList normalizes a sequence of raw records, dropping the ones
// that fail and preserving order.
func NormalizeList(raws []map[string]any) []models.Book {
	books := make([]models.Book, 0, len(raws))
	for _, raw := range raws {
		if b, ok := Normalize(raw); ok {
			books = append(books, b)
		}
	}
	return books
}

// patchFromRaw builds a patch containing exactly the canonical fields the
// raw record carries. Used to merge a server response into a local record:
// the server is authoritative for every field it echoes, and silent on the
// rest.
func patchFromRaw(raw map[string]any) models.Patch {
	var p models.Patch
	if _, ok := resolve(raw, fieldAliases["title"]); ok {
		v := resolveString(raw, "title")
		p.Title = &v
	}
	if _, ok := resolve(raw, fieldAliases["author"]); ok {
		v := resolveString(raw, "author")
		p.Author = &v
	}
	if _, ok := resolve(raw, fieldAliases["description"]); ok {
		v := resolveString(raw, "description")
		p.Description = &v
	}
	if _, ok := resolve(raw, fieldAliases["genre"]); ok {
		v := CanonicalGenre(resolveString(raw, "genre"))
		p.Genre = &v
	}
	if _, ok := resolve(raw, fieldAliases["year"]); ok {
		v := resolveString(raw, "year")
		p.Year = &v
	}
	return p
}
