// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package concept

import (
	"strconv"
	"time"

	"github.com/taibuivan/catalog/internal/core/field"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/pointer"
	"github.com/taibuivan/catalog/pkg/slice"
)

// # Domain Entities

// Concept is a named, curated grouping of data fields.
type Concept struct {
	ID            int64
	Name          string
	PluralName    string
	Description   string
	Keywords      string
	CategoryID    *int64
	Order         *float64
	FormatterName string
	QueryView     string
	Sortable      bool
	Published     bool
	Archived      bool
	Modified      time.Time

	// Fields holds the ordered field links, populated by the service.
	Fields []ConceptField
}

// DisplayPluralName returns the plural name, deriving one from Name when unset.
func (c *Concept) DisplayPluralName() string {
	if c.PluralName != "" {
		return c.PluralName
	}
	return c.Name + "s"
}

// ConceptField links a concept to one of its fields and carries the display
// names the concept uses for it.
type ConceptField struct {
	ID         int64
	ConceptID  int64
	FieldID    int64
	Name       *string
	PluralName *string
	Order      *float64
	Field      *field.Field
}

// AltName is the concept-specific name of the field, or the field's own name.
func (cf *ConceptField) AltName() string {
	if name := pointer.Fallback(cf.Name, ""); name != "" {
		return name
	}
	return cf.Field.Name
}

// AltPluralName resolves the plural display name: the explicit override,
// then the singular override plus "s", then the field's plural name.
func (cf *ConceptField) AltPluralName() string {
	if plural := pointer.Fallback(cf.PluralName, ""); plural != "" {
		return plural
	}
	if name := pointer.Fallback(cf.Name, ""); name != "" {
		return name + "s"
	}
	return cf.Field.DisplayPluralName()
}

// # Query Parameters

// Filter narrows which concepts a query may return.
//
// PublishedOnly is the non-privileged visibility rule and takes precedence
// over the explicit flag filters, which only privileged callers can set.
type Filter struct {
	PublishedOnly bool
	Published     *bool
	Archived      *bool
}

// Order selects the ordering of an unsearched listing.
type Order int

const (
	// OrderDefault sorts by curated order, then name, then id.
	OrderDefault Order = iota
	// OrderNameAsc sorts by name ascending.
	OrderNameAsc
	// OrderNameDesc sorts by name descending.
	OrderNameDesc
)

// ListParams carries the raw collection query parameters.
type ListParams struct {
	Sort      string
	Direction string
	Published *bool
	Archived  *bool
	Query     string
}

// order maps the sort and direction parameters. Only "name" is sortable and
// the direction defaults to descending.
func (p ListParams) order() Order {
	if p.Sort != "name" {
		return OrderDefault
	}
	if p.Direction == "asc" {
		return OrderNameAsc
	}
	return OrderNameDesc
}

// # Serialization

// Path is the API route of a single concept.
func Path(id int64) string {
	return constants.ConceptsPath + "/" + strconv.FormatInt(id, 10)
}

// FieldPayload is a field document extended with the concept's display names.
type FieldPayload struct {
	field.Payload
	AltName       string `json:"alt_name"`
	AltPluralName string `json:"alt_plural_name"`
}

// Payload is the JSON document of a concept.
type Payload struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	PluralName    string         `json:"plural_name"`
	Description   string         `json:"description"`
	Keywords      string         `json:"keywords"`
	CategoryID    *int64         `json:"category_id"`
	Order         *float64       `json:"order"`
	FormatterName string         `json:"formatter_name"`
	QueryView     string         `json:"queryview"`
	Sortable      bool           `json:"sortable"`
	Published     bool           `json:"published"`
	Archived      bool           `json:"archived"`
	Modified      time.Time      `json:"modified"`
	Fields        []FieldPayload `json:"fields"`
	Links         respond.Links  `json:"_links"`
}

// Prepare serializes c with its nested fields. absolute turns an API path
// into a public URL.
func Prepare(c *Concept, absolute func(path string) string) Payload {
	return Payload{
		ID:            c.ID,
		Name:          c.Name,
		PluralName:    c.DisplayPluralName(),
		Description:   c.Description,
		Keywords:      c.Keywords,
		CategoryID:    c.CategoryID,
		Order:         c.Order,
		FormatterName: c.FormatterName,
		QueryView:     c.QueryView,
		Sortable:      c.Sortable,
		Published:     c.Published,
		Archived:      c.Archived,
		Modified:      c.Modified,
		Fields: slice.Map(c.Fields, func(cf ConceptField) FieldPayload {
			return FieldPayload{
				Payload:       field.Prepare(cf.Field, absolute),
				AltName:       cf.AltName(),
				AltPluralName: cf.AltPluralName(),
			}
		}),
		Links: respond.SelfLinks(absolute(Path(c.ID))),
	}
}
