// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package field

import (
	"strconv"
	"time"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/respond"
)

// Field is a single underlying data column, identified by the app, model and
// column it was registered from.
type Field struct {
	ID          int64
	Name        string
	PluralName  string
	Description string
	Keywords    string
	AppName     string
	ModelName   string
	FieldName   string
	Unit        string
	PluralUnit  string
	Enumerable  bool
	Searchable  bool
	Published   bool
	Archived    bool
	Modified    time.Time
}

// DisplayPluralName returns the plural name, deriving one from Name when unset.
func (f *Field) DisplayPluralName() string {
	if f.PluralName != "" {
		return f.PluralName
	}
	return f.Name + "s"
}

// Filter narrows which fields a query may return.
type Filter struct {
	// PublishedOnly restricts results to published, non-archived fields.
	PublishedOnly bool
}

// Path is the API route of a single field.
func Path(id int64) string {
	return constants.FieldsPath + "/" + strconv.FormatInt(id, 10)
}

// Payload is the JSON document of a field.
type Payload struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	PluralName  string        `json:"plural_name"`
	Description string        `json:"description"`
	Keywords    string        `json:"keywords"`
	AppName     string        `json:"app_name"`
	ModelName   string        `json:"model_name"`
	FieldName   string        `json:"field_name"`
	Unit        string        `json:"unit"`
	PluralUnit  string        `json:"plural_unit"`
	Enumerable  bool          `json:"enumerable"`
	Searchable  bool          `json:"searchable"`
	Published   bool          `json:"published"`
	Archived    bool          `json:"archived"`
	Modified    time.Time     `json:"modified"`
	Links       respond.Links `json:"_links"`
}

// Prepare serializes f. absolute turns an API path into a public URL.
func Prepare(f *Field, absolute func(path string) string) Payload {
	return Payload{
		ID:          f.ID,
		Name:        f.Name,
		PluralName:  f.DisplayPluralName(),
		Description: f.Description,
		Keywords:    f.Keywords,
		AppName:     f.AppName,
		ModelName:   f.ModelName,
		FieldName:   f.FieldName,
		Unit:        f.Unit,
		PluralUnit:  f.PluralUnit,
		Enumerable:  f.Enumerable,
		Searchable:  f.Searchable,
		Published:   f.Published,
		Archived:    f.Archived,
		Modified:    f.Modified,
		Links:       respond.SelfLinks(absolute(Path(f.ID))),
	}
}
