// Package htmltable locates a table by the heading that introduces it and
// exposes its rows keyed by their first-cell label.
package htmltable

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultHeadingTags are searched by FindSection when no tags are given.
var DefaultHeadingTags = []string{"h2"}

// Row is a single <tr> reduced to the trimmed text of its cells.
type Row struct {
	Cells []string
}

// Label returns the first cell, lower-cased and trimmed.
func (r Row) Label() string {
	if len(r.Cells) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(r.Cells[0]))
}

// Cell returns the i-th cell text.
func (r Row) Cell(i int) (string, bool) {
	if i < 0 || i >= len(r.Cells) {
		return "", false
	}
	return r.Cells[i], true
}

// Len is the number of cells in the row.
func (r Row) Len() int { return len(r.Cells) }

// Table is the text content of an HTML table.
// Header comes from the first row (th or td cells); Rows holds every row's td cells,
// so a th-only header row shows up as an empty Row.
type Table struct {
	Header []string
	Rows   []Row
}

// ColumnIndex returns the first header column containing substr, ignoring case
// and runs of whitespace, or -1.
func (t *Table) ColumnIndex(substr string) int {
	needle := normalize(substr)
	if needle == "" {
		return -1
	}
	for i, h := range t.Header {
		if strings.Contains(normalize(h), needle) {
			return i
		}
	}
	return -1
}

// FindRow returns the first row whose label satisfies match.
func (t *Table) FindRow(match func(label string) bool) (Row, bool) {
	for _, r := range t.Rows {
		if r.Len() == 0 {
			continue
		}
		if match(r.Label()) {
			return r, true
		}
	}
	return Row{}, false
}

// FindSection returns the first element among tags whose text contains phrase,
// compared case-insensitively. The returned selection is empty when nothing matches.
func FindSection(doc *goquery.Document, phrase string, tags ...string) *goquery.Selection {
	if len(tags) == 0 {
		tags = DefaultHeadingTags
	}
	needle := normalize(phrase)
	return doc.Find(strings.Join(tags, ", ")).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(normalize(s.Text()), needle)
	}).First()
}

// NextTable returns the first <table> that follows anchor in document order.
func NextTable(doc *goquery.Document, anchor *goquery.Selection) (*goquery.Selection, bool) {
	if anchor == nil || anchor.Length() == 0 {
		return nil, false
	}
	target := anchor.Get(0)

	var found *goquery.Selection
	passed := false
	// Find("*") walks elements in document order.
	doc.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Get(0) == target {
			passed = true
			return true
		}
		if passed && goquery.NodeName(s) == "table" {
			found = s
			return false
		}
		return true
	})
	return found, found != nil
}

// Parse reduces a <table> selection to its cell texts.
func Parse(table *goquery.Selection) *Table {
	t := &Table{}
	rows := table.Find("tr")
	rows.Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				t.Header = append(t.Header, strings.TrimSpace(cell.Text()))
			})
		}
		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		t.Rows = append(t.Rows, Row{Cells: cells})
	})
	return t
}

// FindTable chains FindSection, NextTable and Parse.
func FindTable(doc *goquery.Document, phrase string, tags ...string) (*Table, bool) {
	heading := FindSection(doc, phrase, tags...)
	if heading.Length() == 0 {
		return nil, false
	}
	sel, ok := NextTable(doc, heading)
	if !ok {
		return nil, false
	}
	return Parse(sel), true
}

// normalize lower-cases s and collapses whitespace, including non-breaking spaces.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
