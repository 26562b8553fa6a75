package render

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/mdhelpers/pkg/constants"
	"github.com/agentstation/mdhelpers/pkg/errors"
)

// FormatOf returns the data format implied by a file extension.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return constants.DefaultDataFormat
	}
}

// ReadInput reads a file, or stdin when path is "-". Inputs larger than
// constants.MaxDataFileSize are rejected.
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	var r io.Reader
	if path == constants.StdinPath {
		if stdin == nil {
			stdin = os.Stdin
		}
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NewNotFoundError("file", path)
			}
			return nil, errors.WrapIO("open", path, err)
		}
		defer f.Close() //nolint:errcheck // read-only
		r = f
	}

	data, err := io.ReadAll(io.LimitReader(r, constants.MaxDataFileSize+1))
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(data) > constants.MaxDataFileSize {
		return nil, errors.NewValidationError("size", len(data), "input exceeds maximum data file size")
	}
	return data, nil
}

// DecodeData parses YAML or JSON template data. Empty input decodes to an
// empty map.
func DecodeData(raw []byte, format, source string) (map[string]any, error) {
	data := make(map[string]any)
	if len(bytes.TrimSpace(raw)) == 0 {
		return data, nil
	}

	if err := Unmarshal(raw, format, source, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = make(map[string]any)
	}
	return data, nil
}

// Unmarshal decodes raw into v. JSON files, and stdin input that is valid
// JSON, go through go-json so exponent numbers such as 1e3 decode as
// numbers; YAML reads them as strings.
func Unmarshal(raw []byte, format, source string, v any) error {
	if format == "json" || looksLikeJSON(raw) {
		if err := json.Unmarshal(raw, v); err != nil {
			return errors.WrapParse("json", source, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(raw, v); err != nil {
		return errors.WrapParse(format, source, err)
	}
	return nil
}

// looksLikeJSON reports whether raw is a JSON object or array. YAML flow
// mappings like {a: 1} are not valid JSON and stay with the YAML decoder.
func looksLikeJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	return json.Valid(trimmed)
}

// LoadData reads and decodes a data file ("-" for stdin).
func LoadData(path string, stdin io.Reader) (map[string]any, error) {
	raw, err := ReadInput(path, stdin)
	if err != nil {
		return nil, err
	}
	return DecodeData(raw, FormatOf(path), path)
}

// WriteOutput writes rendered content to path, creating parent directories.
func WriteOutput(path string, content []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, content, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
