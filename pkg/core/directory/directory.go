// Package directory maps fund display names to their provider page URLs.
package directory

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	ColumnFundName = "Fund Name"
	ColumnURL      = "URL"
)

var (
	// ErrUnknownFund is returned by Resolve for a name that is not listed.
	ErrUnknownFund = errors.New("unknown fund")
	// ErrMissingColumns is returned when a sheet lacks the Fund Name or URL header.
	ErrMissingColumns = errors.New("missing Fund Name or URL column")
	// ErrUnsupportedFormat is returned by Load for an unrecognised file extension.
	ErrUnsupportedFormat = errors.New("unsupported directory format")
)

// Entry is one listed fund.
type Entry struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Directory is an ordered name -> URL mapping.
type Directory struct {
	order []string
	urls  map[string]string
}

// New builds a directory from entries. Entries with an empty name or URL
// (after trimming) are dropped; a repeated name keeps its first position and
// takes the later URL.
func New(entries []Entry) *Directory {
	d := &Directory{urls: make(map[string]string)}
	for _, e := range entries {
		d.add(e.Name, e.URL)
	}
	return d
}

func (d *Directory) add(name, url string) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" || url == "" {
		return
	}
	if _, ok := d.urls[name]; !ok {
		d.order = append(d.order, name)
	}
	d.urls[name] = url
}

// Len is the number of listed funds.
func (d *Directory) Len() int { return len(d.order) }

// Names returns fund names in source order.
func (d *Directory) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Lookup returns the URL for name.
func (d *Directory) Lookup(name string) (string, bool) {
	url, ok := d.urls[strings.TrimSpace(name)]
	return url, ok
}

// Resolve maps names to entries, keeping the requested order.
func (d *Directory) Resolve(names []string) ([]Entry, error) {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		url, ok := d.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFund, n)
		}
		out = append(out, Entry{Name: strings.TrimSpace(n), URL: url})
	}
	return out, nil
}

// Load reads a directory file, choosing the format from its extension.
// sheet only applies to workbooks; empty means the first sheet.
func Load(path, sheet string) (*Directory, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadExcel(path, sheet)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Unique drops blank and repeated names, keeping first-seen order.
func Unique(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
