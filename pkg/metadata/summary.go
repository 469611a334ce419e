package metadata

// FamilySummary describes one configured family.
type FamilySummary struct {
	Family  Family   `json:"family" yaml:"family"`
	Vendors []string `json:"vendors" yaml:"vendors"`
	Default string   `json:"default_vendor,omitempty" yaml:"default_vendor,omitempty"`
}

// VendorEntry is a vendor record paired with its table key.
type VendorEntry struct {
	Vendor   string         `json:"vendor" yaml:"vendor"`
	Default  bool           `json:"default" yaml:"default"`
	Metadata VendorMetadata `json:"metadata" yaml:"metadata"`
}

// Summaries lists every configured family in document order. A family with
// an empty vendor table has no default.
func (c *Config) Summaries() []FamilySummary {
	summaries := make([]FamilySummary, 0, len(c.order))
	for _, family := range c.order {
		table := c.families[family]
		def, _ := table.Last()
		summaries = append(summaries, FamilySummary{
			Family:  family,
			Vendors: table.Names(),
			Default: def,
		})
	}
	return summaries
}

// Entries returns the records of a family in table order.
func (c *Config) Entries(family Family) ([]VendorEntry, error) {
	table, err := c.Vendors(family)
	if err != nil {
		return nil, err
	}
	def, _ := table.Last()
	entries := make([]VendorEntry, 0, table.Len())
	for _, name := range table.Names() {
		md, _ := table.Get(name)
		entries = append(entries, VendorEntry{
			Vendor:   name,
			Default:  name == def,
			Metadata: md,
		})
	}
	return entries, nil
}
