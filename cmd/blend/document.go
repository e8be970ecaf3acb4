package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var ErrBadDocument = errors.New("invalid document")

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// readDocument loads the document at path, or from stdin when path is "-".
// An empty document decodes to nil.
func readDocument(path string, stdin io.Reader) (interface{}, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	doc, err := decodeDocument(data, formatOf(path))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return doc, nil
}

func decodeDocument(data []byte, format string) (interface{}, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc interface{}
	switch format {
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(ErrBadDocument, err.Error())
		}
		return stringKeys(doc)
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(ErrBadDocument, err.Error())
		}
		return doc, nil
	}
}

// stringKeys converts the mappings yaml produces for non-string keys into
// map[string]interface{}.
func stringKeys(x interface{}) (interface{}, error) {
	switch x := x.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for k, v := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, errors.Wrapf(ErrBadDocument, "mapping key %v is not a string", k)
			}
			sv, err := stringKeys(v)
			if err != nil {
				return nil, err
			}
			m[ks] = sv
		}
		return m, nil
	case map[string]interface{}:
		for k, v := range x {
			sv, err := stringKeys(v)
			if err != nil {
				return nil, err
			}
			x[k] = sv
		}
	case []interface{}:
		for i, v := range x {
			sv, err := stringKeys(v)
			if err != nil {
				return nil, err
			}
			x[i] = sv
		}
	}
	return x, nil
}

func encodeDocument(w io.Writer, doc interface{}, format string) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encode json")
	}
}

// toJSON renders doc as JSON, for comparing documents regardless of the
// format they were read in.
func toJSON(doc interface{}) ([]byte, error) {
	data, err := json.Marshal(doc)
	return data, errors.Wrap(err, "encode json")
}
