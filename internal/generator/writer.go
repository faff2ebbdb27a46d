package generator

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vanshika/oraculo/internal/service"
)

// Format is a batch file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the encoding from the file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// WriteItems encodes items to w.
func WriteItems(w io.Writer, items []service.BatchItem, format Format) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(items); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(items); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// ReadItems decodes a batch file produced by WriteItems or written by hand.
func ReadItems(r io.Reader, format Format) ([]service.BatchItem, error) {
	var items []service.BatchItem
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&items); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&items); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return items, nil
}

// WriteFile serializes items to path, creating parent directories.
func WriteFile(path string, items []service.BatchItem) error {
	return CreateFile(path, func(w io.Writer) error {
		return WriteItems(w, items, FormatFromPath(path))
	})
}

// CreateFile creates path, parent directories included, and hands it to write.
// A failure to close the file is returned like any write error.
func CreateFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer closeFile(file, path, &err)

	return write(file)
}

// closeFile keeps the first error seen.
func closeFile(c io.Closer, path string, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close %s: %w", path, cerr)
	}
}

// ReadFile loads items from path.
func ReadFile(path string) ([]service.BatchItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return ReadItems(file, FormatFromPath(path))
}
