package licenses

import (
	"errors"
	"sort"
)

// ErrSealed is returned when adding to a builder whose catalog was already sealed.
var ErrSealed = errors.New("license catalog is sealed")

// Builder collects entries before the catalog is sealed.
type Builder struct {
	entries []Entry
	sealed  *Catalog
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an entry. Duplicate names are kept.
func (b *Builder) Add(name, author, version, website, description, license, licenseFile, licenseWebsite, customLicenseFile string) error {
	return b.AddEntry(Entry{
		Name:              name,
		Author:            author,
		Version:           version,
		Website:           website,
		Description:       description,
		License:           license,
		LicenseFile:       licenseFile,
		CustomLicenseFile: customLicenseFile,
		LicenseWebsite:    licenseWebsite,
	})
}

// AddEntry appends e.
func (b *Builder) AddEntry(e Entry) error {
	if b.sealed != nil {
		return ErrSealed
	}
	b.entries = append(b.entries, e)
	return nil
}

// Len returns the number of collected entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Seal sorts the entries by name and returns the read-only catalog.
// Later calls return the same catalog.
func (b *Builder) Seal() *Catalog {
	if b.sealed != nil {
		return b.sealed
	}

	entries := b.entries
	b.entries = nil
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	b.sealed = &Catalog{entries: entries}
	return b.sealed
}

// Catalog is a sealed, name ordered list of entries. It is safe for concurrent reads.
type Catalog struct {
	entries []Entry
}

// Count returns the number of entries.
func (c *Catalog) Count() int {
	return len(c.entries)
}

// Entry returns the entry at row.
func (c *Catalog) Entry(row int) (Entry, bool) {
	if row < 0 || row >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[row], true
}

// Get returns one field of the entry at row. Rows outside the catalog and
// unknown fields report false.
func (c *Catalog) Get(row int, field Field) (string, bool) {
	e, ok := c.Entry(row)
	if !ok {
		return "", false
	}
	return e.Value(field)
}

// Entries returns a copy of all entries in row order.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, len(c.entries))
	copy(entries, c.entries)
	return entries
}
