package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/webicons/pkg/metadata"
	"github.com/agentstation/webicons/pkg/page"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON", FormatTable, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("", FormatTable)
	require.NoError(t, err)
	assert.Equal(t, Format(""), f)

	_, err = ParseFormat("html", FormatTable, FormatJSON, FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table, json, yaml")
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestJSONFormatter_KeepsHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, map[string]string{"a": "<b>"}))
	assert.Contains(t, buf.String(), `"<b>"`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	summaries := []metadata.FamilySummary{{Family: metadata.Icons, Vendors: []string{"Lucide", "Feather"}, Default: "Feather"}}
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, summaries))

	out := buf.String()
	assert.Contains(t, out, "family: icons")
	assert.Contains(t, out, "default_vendor: Feather")
	assert.Less(t, strings.Index(out, "Lucide"), strings.Index(out, "Feather"))
}

func TestHTMLFormatter(t *testing.T) {
	doc := page.Render(metadata.VendorMetadata{Name: "Lucide", URL: "https://lucide.dev/"}, "home")

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatHTML).Format(&buf, doc))
	assert.Equal(t, doc.String(), buf.String())

	assert.Error(t, NewFormatter(FormatHTML).Format(&buf, 42))
}

func TestTableFormatter(t *testing.T) {
	data := EntriesToTableData([]metadata.VendorEntry{
		{Vendor: "Lucide", Metadata: metadata.VendorMetadata{Name: "Lucide", LicenseName: "ISC", URL: "https://lucide.dev/"}},
		{Vendor: "Feather", Default: true, Metadata: metadata.VendorMetadata{Name: "Feather", LicenseName: "MIT", URL: "https://feathericons.com/"}},
	})
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "", data.Rows[0][0])
	assert.Equal(t, "*", data.Rows[1][0])

	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, data))
	assert.Contains(t, buf.String(), "feathericons.com")
	assert.Contains(t, buf.String(), "ISC")
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, []int{1, 2}))
	assert.Contains(t, buf.String(), "1,")
}

func TestSummariesToTableData(t *testing.T) {
	data := SummariesToTableData([]metadata.FamilySummary{
		{Family: metadata.Emojis, Vendors: []string{"Noto", "OpenMoji"}, Default: "OpenMoji"},
		{Family: metadata.Icons},
	})
	assert.Equal(t, []string{"Emojis", "2", "OpenMoji"}, data.Rows[0])
	assert.Equal(t, []string{"Icons", "0", "-"}, data.Rows[1])
}
