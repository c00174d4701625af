// Package size classifies the sections of compiled object files (ELF,
// PE/COFF, Mach-O) into the classic text/data/bss categories and reports
// per-category sizes.
package size

import "fmt"

// Category is the semantic class of a section in the classic size report.
type Category int

const (
	// Text covers loaded sections that are executable or read-only.
	// Read-only data is folded into text, matching size(1) convention.
	Text Category = iota
	// Data covers loaded, writable sections backed by file content.
	Data
	// Bss covers loaded, writable sections zero-filled by the loader,
	// with no bytes stored in the file.
	Bss
	// Other covers sections not loaded into memory at run time, such as
	// symbol tables and debug info.
	Other
)

var categoryNames = [...]string{"Text", "Data", "Bss", "Other"}

func (c Category) String() string {
	if c < Text || c > Other {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Categories returns all categories in report order.
func Categories() []Category {
	return []Category{Text, Data, Bss, Other}
}

// Section is one classified section of an object file.
type Section struct {
	Name     string   `json:"name"`
	Size     uint64   `json:"size"`
	Category Category `json:"category"`
}

// Totals holds the per-category byte sums of the legacy report. Other
// sections occupy no memory at run time and are excluded on purpose.
type Totals struct {
	Text uint64 `json:"text"`
	Data uint64 `json:"data"`
	Bss  uint64 `json:"bss"`
}

// Dec returns text+data+bss, the "dec" column of the classic report.
func (t Totals) Dec() uint64 {
	return t.Text + t.Data + t.Bss
}

// Groups maps section names to sizes within each category, in category
// order. A category that received no sections is a nil map and is
// omitted from structured output.
type Groups struct {
	Text  map[string]uint64 `json:"Text,omitempty" yaml:"Text,omitempty"`
	Data  map[string]uint64 `json:"Data,omitempty" yaml:"Data,omitempty"`
	Bss   map[string]uint64 `json:"Bss,omitempty" yaml:"Bss,omitempty"`
	Other map[string]uint64 `json:"Other,omitempty" yaml:"Other,omitempty"`
}

// Sum folds classified sections into the legacy per-category totals.
func Sum(sections []Section) Totals {
	var t Totals
	for _, s := range sections {
		switch s.Category {
		case Text:
			t.Text += s.Size
		case Data:
			t.Data += s.Size
		case Bss:
			t.Bss += s.Size
		}
	}
	return t
}

// Group buckets per-name sizes within each category. A later section
// with a duplicate name overwrites the earlier entry.
func Group(sections []Section) Groups {
	var g Groups
	for _, s := range sections {
		g.bucket(s.Category)[s.Name] = s.Size
	}
	return g
}

func (g *Groups) bucket(c Category) map[string]uint64 {
	var m *map[string]uint64
	switch c {
	case Text:
		m = &g.Text
	case Data:
		m = &g.Data
	case Bss:
		m = &g.Bss
	default:
		m = &g.Other
	}
	if *m == nil {
		*m = make(map[string]uint64)
	}
	return *m
}
