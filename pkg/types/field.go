package types

import "strings"

// FieldSpec describes one column of the generated dataset: the generator to
// use and the column name. Either attribute may be empty while the user is
// still editing.
type FieldSpec struct {
	DataType string `json:"dataType" yaml:"dataType"`
	Name     string `json:"name" yaml:"name"`
}

// Complete reports whether both the data type and the name are set.
func (f FieldSpec) Complete() bool {
	return f.DataType != "" && f.Name != ""
}

// String renders the field as type:name, the form accepted by --field.
func (f FieldSpec) String() string {
	return f.DataType + ":" + f.Name
}

// ParseFieldSpec parses "type:name". A missing name leaves Name empty.
func ParseFieldSpec(s string) FieldSpec {
	dataType, name, _ := strings.Cut(s, ":")
	return FieldSpec{
		DataType: strings.TrimSpace(dataType),
		Name:     strings.TrimSpace(name),
	}
}

// DataType is one entry of the fixed generator catalog.
type DataType struct {
	ID    string
	Label string
}

// ExportRequest is the JSON body sent to the export and preview endpoints.
type ExportRequest struct {
	Fields     []FieldSpec `json:"fields"`
	Count      int         `json:"count"`
	FileFormat FileFormat  `json:"file_format"`
}
