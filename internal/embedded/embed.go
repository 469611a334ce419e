// Package embedded carries the default vendor metadata document inside the binary.
package embedded

import (
	"embed"

	"github.com/agentstation/webicons/pkg/metadata"
)

// MetadataFile is the name of the embedded metadata document.
const MetadataFile = "metadata.json"

// FS embeds the default metadata document at build time.
//
//go:embed metadata.json
var FS embed.FS

// Source returns the embedded metadata document as a metadata source.
func Source() metadata.Source {
	return metadata.FSSource(FS, MetadataFile)
}
