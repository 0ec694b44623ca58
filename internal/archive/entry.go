package archive

import (
	"strings"

	"github.com/five82/linkshelf/internal/catalog"
)

const entryNote = "Note: if direct downloads are restricted, copy the link above into your browser to fetch the file."

// RenderEntry returns the plain-text body stored for a record.
func RenderEntry(rec catalog.Record) string {
	var b strings.Builder
	b.WriteString("Buildings data file details\n")
	b.WriteString("----------------------------------\n")
	b.WriteString("Region: " + rec.Region + "\n")
	b.WriteString("Quadkey: " + rec.Quadkey + "\n")
	b.WriteString("Direct download URL: " + rec.URL + "\n")
	b.WriteString("Approximate size: " + rec.Size + "\n")
	b.WriteString("Updated: " + rec.Updated + "\n")
	b.WriteString("\n")
	b.WriteString(entryNote)
	return b.String()
}
