// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Selects display columns from declarative attribute maps and projects
// resource records onto them.

package taasctl

import (
	"fmt"

	"github.com/siemens/taasctl/api"
	"golang.org/x/exp/slices"
)

// Visibility controls in which listing modes an attribute is shown.
type Visibility int

const (
	// ListBoth attributes are always shown.
	ListBoth Visibility = iota
	// ListLongOnly attributes are shown only in long listings.
	ListLongOnly
)

// Attribute describes a single resource field together with its display
// label and visibility.
type Attribute struct {
	Field      string
	Label      string
	Visibility Visibility
}

// AttributeSpec is an ordered list of attributes; the order defines the
// column order. Field names must be unique within an AttributeSpec.
type AttributeSpec []Attribute

// Column is a single display column: the record field and its label.
type Column struct {
	Field string
	Label string
}

// Columns is an ordered list of display columns.
type Columns []Column

// Validate returns an error if any field appears more than once.
func (s AttributeSpec) Validate() error {
	seen := map[string]struct{}{}
	for _, attr := range s {
		if _, ok := seen[attr.Field]; ok {
			return fmt.Errorf("duplicate attribute field %q", attr.Field)
		}
		seen[attr.Field] = struct{}{}
	}
	return nil
}

// Columns returns the columns to show in listings. In short mode only the
// ListBoth attributes are returned. In long mode, the ListLongOnly attributes
// follow the ListBoth attributes, each group keeping its declared order.
func (s AttributeSpec) Columns(long bool) Columns {
	cols := make(Columns, 0, len(s))
	for _, attr := range s {
		if attr.Visibility == ListBoth {
			cols = append(cols, Column{Field: attr.Field, Label: attr.Label})
		}
	}
	if !long {
		return cols
	}
	for _, attr := range s {
		if attr.Visibility == ListLongOnly {
			cols = append(cols, Column{Field: attr.Field, Label: attr.Label})
		}
	}
	return cols
}

// RecordColumns returns the columns for showing a single record: one column
// per field present in the record, labelled as in this attribute spec or by
// the field name itself for unknown fields. The columns are sorted by their
// labels.
func (s AttributeSpec) RecordColumns(rec api.Record) Columns {
	labels := make(map[string]string, len(s))
	for _, attr := range s {
		labels[attr.Field] = attr.Label
	}
	cols := make(Columns, 0, len(rec))
	for field := range rec {
		label, ok := labels[field]
		if !ok {
			label = field
		}
		cols = append(cols, Column{Field: field, Label: label})
	}
	slices.SortStableFunc(cols, func(a, b Column) bool {
		if a.Label == b.Label {
			return a.Field < b.Field
		}
		return a.Label < b.Label
	})
	return cols
}

// Project returns the values of the record's fields, aligned with the
// columns. Fields missing from the record yield nil.
func (cs Columns) Project(rec api.Record) []any {
	values := make([]any, len(cs))
	for idx, col := range cs {
		values[idx] = rec[col.Field]
	}
	return values
}

// Fields returns the field names of the columns.
func (cs Columns) Fields() []string {
	fields := make([]string, len(cs))
	for idx, col := range cs {
		fields[idx] = col.Field
	}
	return fields
}

// Labels returns the display labels of the columns.
func (cs Columns) Labels() []string {
	labels := make([]string, len(cs))
	for idx, col := range cs {
		labels[idx] = col.Label
	}
	return labels
}
