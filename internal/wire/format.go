package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a message serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
	// FormatFrame is one length-prefixed frame with a JSON body.
	FormatFrame Format = "frame"
)

var ErrUnknownFormat = errors.New("wire: unknown format")

// ParseFormat accepts json, yaml/yml, cbor and frame in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	case "frame":
		return FormatFrame, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Marshal serializes v in format f. JSON output is indented.
func Marshal(f Format, v any) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("wire: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("wire: yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatCBOR:
		return MarshalCBOR(v)
	case FormatFrame:
		var buf bytes.Buffer
		if err := WriteFrame(&buf, v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Unmarshal parses data in format f into v.
func Unmarshal(f Format, data []byte, v any) error {
	switch f {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatCBOR:
		return UnmarshalCBOR(data, v)
	case FormatFrame:
		return ReadFrame(bytes.NewReader(data), v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
