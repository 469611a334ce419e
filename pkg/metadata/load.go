package metadata

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/webicons/pkg/errors"
)

// recordFields lists the keys every vendor record must carry.
var recordFields = []string{"name", "attribution", "license_name", "license_url", "url"}

// Load reads and parses the document behind src.
// A cancelled or expired ctx fails the load as unreadable.
func Load(ctx context.Context, src Source) (*Config, error) {
	if src == nil {
		return nil, errors.NewIOError("open", "", fmt.Errorf("no metadata source configured"))
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapIO("open", src.Name(), err)
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, errors.WrapIO("open", src.Name(), err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(&contextReader{ctx: ctx, r: rc})
	if err != nil {
		return nil, errors.WrapIO("read", src.Name(), err)
	}

	return Parse(data, src.Name())
}

// Parse decodes a metadata document. JSON and YAML are both accepted.
func Parse(data []byte, name string) (*Config, error) {
	format := formatOf(name)
	malformed := func(msg string, args ...any) error {
		return errors.NewParseError(format, name, fmt.Sprintf(msg, args...), nil)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, malformed("empty document")
	}

	var root any
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, errors.WrapParse(format, name, err)
	}
	families, ok := root.(yaml.MapSlice)
	if !ok {
		return nil, malformed("document root must be a mapping of families")
	}

	cfg := NewConfig()
	for _, item := range families {
		key, ok := item.Key.(string)
		if !ok {
			return nil, malformed("family key %v is not a string", item.Key)
		}
		family, err := ParseFamily(key)
		if err != nil {
			return nil, malformed("unknown family %q", key)
		}
		if _, dup := cfg.families[family]; dup {
			return nil, malformed("family %q defined twice", key)
		}
		vendors, ok := item.Value.(yaml.MapSlice)
		if !ok && !isEmptyMap(item.Value) {
			return nil, malformed("family %q must map vendor names to records", key)
		}

		table := NewVendorTable()
		for _, v := range vendors {
			vendor, ok := v.Key.(string)
			if !ok {
				return nil, malformed("vendor key %v in %s is not a string", v.Key, key)
			}
			md, err := decodeRecord(v.Value)
			if err != nil {
				return nil, malformed("vendor %q in %s: %v", vendor, key, err)
			}
			if err := table.Add(vendor, md); err != nil {
				return nil, malformed("vendor %q defined twice in %s", vendor, key)
			}
		}
		cfg.SetFamily(family, table)
	}

	return cfg, nil
}

func decodeRecord(value any) (VendorMetadata, error) {
	record, ok := value.(yaml.MapSlice)
	if !ok {
		return VendorMetadata{}, fmt.Errorf("record must be a mapping")
	}

	fields := make(map[string]string, len(recordFields))
	for _, item := range record {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}
		s, ok := item.Value.(string)
		if !ok {
			return VendorMetadata{}, fmt.Errorf("field %q must be a string", key)
		}
		fields[key] = s
	}
	for _, f := range recordFields {
		if _, ok := fields[f]; !ok {
			return VendorMetadata{}, fmt.Errorf("missing field %q", f)
		}
	}

	return VendorMetadata{
		Name:        fields["name"],
		Attribution: fields["attribution"],
		LicenseName: fields["license_name"],
		LicenseURL:  fields["license_url"],
		URL:         fields["url"],
	}, nil
}

// isEmptyMap matches `{}`, which some decoders return as an unordered map.
func isEmptyMap(v any) bool {
	switch m := v.(type) {
	case map[string]any:
		return len(m) == 0
	case map[any]any:
		return len(m) == 0
	}
	return false
}

func formatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
