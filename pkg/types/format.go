package types

import (
	"fmt"
	"strings"
)

// FileFormat identifies the file type the export endpoint should produce.
type FileFormat string

const (
	FormatCSV  FileFormat = "csv"
	FormatJSON FileFormat = "json"
	FormatXML  FileFormat = "xml"
	FormatHTML FileFormat = "html"
	FormatXLSX FileFormat = "xlsx"
)

// DefaultFileFormat is preselected in every front end.
const DefaultFileFormat = FormatCSV

// FileFormats lists the supported formats in display order.
func FileFormats() []FileFormat {
	return []FileFormat{FormatCSV, FormatJSON, FormatXML, FormatHTML, FormatXLSX}
}

// Label returns the human-readable name shown in selectors.
func (f FileFormat) Label() string {
	switch f {
	case FormatCSV:
		return "CSV"
	case FormatJSON:
		return "JSON"
	case FormatXML:
		return "XML"
	case FormatHTML:
		return "HTML"
	case FormatXLSX:
		return "XLS/Excel"
	}
	return string(f)
}

// Valid reports whether f is one of the supported formats.
func (f FileFormat) Valid() bool {
	for _, known := range FileFormats() {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFileFormat is case-insensitive.
func ParseFileFormat(s string) (FileFormat, error) {
	f := FileFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unsupported file format %q", s)
	}
	return f, nil
}
