package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the payload encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the payload format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadPayload reads and parses a raw payload file.
func LoadPayload(path string) (RawPayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawPayload{}, fmt.Errorf("read payload: %w", err)
	}
	return ParsePayload(data, FormatForPath(path))
}

// LoadData reads, parses, and normalizes a raw payload file.
func LoadData(path string) (ScreeningData, error) {
	raw, err := LoadPayload(path)
	if err != nil {
		return ScreeningData{}, err
	}
	return Normalize(raw)
}

// ParsePayload decodes a raw payload. Syntax errors are returned as-is;
// JSON documents that decode but violate the payload schema are reported
// as a NormalizationError.
func ParsePayload(data []byte, format Format) (RawPayload, error) {
	if format == FormatYAML {
		return parseYAMLPayload(data)
	}
	return parseJSONPayload(data)
}

func parseJSONPayload(data []byte) (RawPayload, error) {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return RawPayload{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return RawPayload{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return RawPayload{}, fmt.Errorf("parse json: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return RawPayload{}, &NormalizationError{Err: err}
	}
	var raw RawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return RawPayload{}, fmt.Errorf("parse json: %w", err)
	}
	return raw, nil
}

func parseYAMLPayload(data []byte) (RawPayload, error) {
	var raw RawPayload
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return RawPayload{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return RawPayload{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return RawPayload{}, fmt.Errorf("parse yaml: %w", err)
	}
	return raw, nil
}
