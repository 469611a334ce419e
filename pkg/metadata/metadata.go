// Package metadata holds the vendor attribution store for webicons.
//
// A Config maps each Family to a VendorTable, which maps vendor names to
// VendorMetadata records. Vendor order is preserved from the source document
// because the default vendor of a family is its last-defined entry.
//
// Configs are read-only once loaded. Callers load a fresh Config for every
// resolution with Load, so a Config is never shared between requests.
package metadata

import (
	"github.com/agentstation/webicons/pkg/errors"
)

// VendorMetadata is the attribution record of a vendor.
type VendorMetadata struct {
	Name        string `json:"name" yaml:"name"`
	Attribution string `json:"attribution" yaml:"attribution"`
	LicenseName string `json:"license_name" yaml:"license_name"`
	LicenseURL  string `json:"license_url" yaml:"license_url"`
	URL         string `json:"url" yaml:"url"`
}

// VendorTable is an insertion-ordered mapping of vendor name to metadata.
type VendorTable struct {
	names   []string
	records map[string]VendorMetadata
}

// NewVendorTable creates an empty vendor table.
func NewVendorTable() *VendorTable {
	return &VendorTable{records: make(map[string]VendorMetadata)}
}

// Add appends a vendor. Adding a name twice is an error.
func (t *VendorTable) Add(name string, md VendorMetadata) error {
	if _, exists := t.records[name]; exists {
		return errors.NewValidationError("vendor", name, "duplicate vendor")
	}
	t.names = append(t.names, name)
	t.records[name] = md
	return nil
}

// Len returns the number of vendors.
func (t *VendorTable) Len() int {
	return len(t.names)
}

// Names returns the vendor names in insertion order.
func (t *VendorTable) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Get returns a copy of the named vendor's record.
func (t *VendorTable) Get(name string) (VendorMetadata, bool) {
	md, ok := t.records[name]
	return md, ok
}

// Last returns the most recently added vendor name.
func (t *VendorTable) Last() (string, bool) {
	if len(t.names) == 0 {
		return "", false
	}
	return t.names[len(t.names)-1], true
}

// Config is the root of the metadata store.
type Config struct {
	order    []Family
	families map[Family]*VendorTable
}

// NewConfig creates an empty config.
func NewConfig() *Config {
	return &Config{families: make(map[Family]*VendorTable)}
}

// SetFamily installs the vendor table of a family.
func (c *Config) SetFamily(family Family, table *VendorTable) {
	if _, exists := c.families[family]; !exists {
		c.order = append(c.order, family)
	}
	if table == nil {
		table = NewVendorTable()
	}
	c.families[family] = table
}

// Families returns the configured families in document order.
func (c *Config) Families() []Family {
	families := make([]Family, len(c.order))
	copy(families, c.order)
	return families
}

// Vendors returns the vendor table of a family.
func (c *Config) Vendors(family Family) (*VendorTable, error) {
	table, ok := c.families[family]
	if !ok {
		return nil, errors.NewNotFoundError("family", family.String())
	}
	return table, nil
}

// DefaultVendor returns the last vendor defined for family.
func (c *Config) DefaultVendor(family Family) (string, error) {
	table, err := c.Vendors(family)
	if err != nil {
		return "", err
	}
	name, ok := table.Last()
	if !ok {
		return "", errors.NewEmptyTableError(family.String())
	}
	return name, nil
}

// Metadata returns a copy of the record for vendor within family.
func (c *Config) Metadata(family Family, vendor string) (VendorMetadata, error) {
	table, err := c.Vendors(family)
	if err != nil {
		return VendorMetadata{}, err
	}
	md, ok := table.Get(vendor)
	if !ok {
		return VendorMetadata{}, errors.NewScopedNotFoundError("vendor", vendor, family.String())
	}
	return md, nil
}
