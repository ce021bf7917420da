package main

import (
	"fmt"
	"os"
	"strings"

	"litedata/internal/catalog"
	"litedata/internal/errors"
	"litedata/pkg/types"

	"gopkg.in/yaml.v3"
)

// fieldsFile is the layout accepted by --fields-file. A bare list works too.
type fieldsFile struct {
	Fields []types.FieldSpec `yaml:"fields"`
}

func readFieldsFile(path string) ([]types.FieldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileError("fields file not found", path, errors.FileNotFound, err)
		}
		return nil, errors.NewFileError("cannot read fields file", path, errors.FileAccessDenied, err)
	}

	var doc fieldsFile
	if err := yaml.Unmarshal(data, &doc); err == nil && len(doc.Fields) > 0 {
		return doc.Fields, nil
	}
	var list []types.FieldSpec
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.NewInvalidInputError("fields file must hold a list of {dataType, name}", err).
			WithContext("path", path)
	}
	return list, nil
}

// collectFields merges --fields-file and --field, file entries first, and
// checks every type against the catalog.
func collectFields(file string, flags []string) ([]types.FieldSpec, error) {
	var list []types.FieldSpec
	if file != "" {
		fromFile, err := readFieldsFile(file)
		if err != nil {
			return nil, err
		}
		list = append(list, fromFile...)
	}
	for _, f := range flags {
		list = append(list, types.ParseFieldSpec(f))
	}
	if len(list) == 0 {
		return nil, errors.NewInvalidInputError("no fields given; use --field type:name or --fields-file", nil)
	}

	for i, f := range list {
		if f.DataType == "" || f.Name == "" {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("field %d needs a data type and a name", i+1), nil).
				WithContext("field", f.String())
		}
		if _, ok := catalog.Lookup(f.DataType); !ok {
			return nil, unknownType(f.DataType)
		}
	}
	return list, nil
}

func unknownType(id string) error {
	msg := fmt.Sprintf("unknown data type %q", id)
	if s := catalog.Suggest(id); len(s) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(s, " or "))
	}
	return errors.NewInvalidInputError(msg, nil).WithContext("dataType", id)
}

// checkAllowed rejects types the service did not offer. An empty set means
// the fetch failed and is reported as such.
func checkAllowed(list []types.FieldSpec, allowed catalog.AllowedSet) error {
	if allowed.Len() == 0 {
		return errors.New("could not load the allowed data types from the service")
	}
	for _, f := range list {
		if !allowed.Contains(f.DataType) {
			return errors.NewInvalidInputError(fmt.Sprintf("data type %q is not offered by the service", f.DataType), nil).
				WithContext("dataType", f.DataType)
		}
	}
	return nil
}
