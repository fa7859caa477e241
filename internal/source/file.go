package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akasprzok/multiline/internal/charts"
	"gopkg.in/yaml.v2"
)

// Format names a data file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// FormatOf picks a format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads the series stored at path. Wb only applies to xlsx
// workbooks.
func LoadFile(path string, wb Workbook) ([]Series, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var series []Series
	if format == FormatXLSX {
		series, err = loadWorkbook(path, wb)
	} else {
		series, err = loadDocument(path, format)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(series) == 0 {
		return nil, &LoadError{Path: path, Err: ErrNoData}
	}

	charts.Logger().Info("data file loaded", "path", path, "format", format, "series", len(series))
	return series, nil
}

func loadDocument(path string, format Format) ([]Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads a yaml or json document from r.
func Decode(r io.Reader, format Format) ([]Series, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc Document
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(raw, &doc)
	case FormatJSON:
		err = json.Unmarshal(raw, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	return doc.Series, nil
}

// Encode writes series to w as a yaml or json document.
func Encode(w io.Writer, format Format, series []Series) error {
	doc := Document{Series: series}
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// SaveFile writes series to path in the format its extension names.
func SaveFile(path, sheet string, series []Series) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if format == FormatXLSX {
		return saveWorkbook(path, sheet, series)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Encode(f, format, series); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
