package output

import (
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/webicons"
	"github.com/agentstation/webicons/internal/cmd/symbols"
	"github.com/agentstation/webicons/pkg/metadata"
)

var titleCaser = cases.Title(language.English)

// FamilyTitle returns the display name of a family ("Emojis").
func FamilyTitle(f metadata.Family) string {
	return titleCaser.String(f.String())
}

// SummariesToTableData lists every family with its vendors in document order.
func SummariesToTableData(summaries []metadata.FamilySummary) Data {
	data := Data{
		Headers:         []string{"Family", "Vendors", "Default"},
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight, tw.AlignLeft},
	}
	for _, s := range summaries {
		def := s.Default
		if def == "" {
			def = "-"
		}
		data.Rows = append(data.Rows, []string{
			FamilyTitle(s.Family),
			strconv.Itoa(len(s.Vendors)),
			def,
		})
	}
	return data
}

// EntriesToTableData lists the vendor records of one family. The default
// vendor is marked.
func EntriesToTableData(entries []metadata.VendorEntry) Data {
	data := Data{
		Headers: []string{"", "Vendor", "Name", "License", "URL"},
	}
	for _, e := range entries {
		mark := ""
		if e.Default {
			mark = symbols.Default
		}
		data.Rows = append(data.Rows, []string{
			mark,
			e.Vendor,
			e.Metadata.Name,
			e.Metadata.LicenseName,
			e.Metadata.URL,
		})
	}
	return data
}

// PageToTableData renders a resolved page as property rows.
func PageToTableData(p *webicons.Page) Data {
	rows := [][]string{
		{"Family", FamilyTitle(p.Family)},
		{"ID", p.ID},
	}
	if p.Glyph != "" {
		rows = append(rows, []string{"Glyph", p.Glyph})
	}
	rows = append(rows,
		[]string{"Title", p.Title},
		[]string{"Vendor", p.Vendor},
		[]string{"Name", p.Metadata.Name},
		[]string{"License", p.Metadata.LicenseName},
		[]string{"License URL", p.Metadata.LicenseURL},
		[]string{"URL", p.Metadata.URL},
	)
	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}
