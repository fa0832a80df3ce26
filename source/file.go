package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/volley/types"
)

// Format identifies the encoding of a matrix document.
type Format string

const (
	// FormatYAML is a YAML (or JSON) document with a top-level "matrix" key.
	FormatYAML Format = "yaml"
	// FormatCSV is one matrix row per line, comma separated.
	FormatCSV Format = "csv"
)

// ErrUnknownFormat indicates a file extension with no matching decoder.
var ErrUnknownFormat = errors.New("unknown matrix file format")

// matrixDocument is the YAML layout of a matrix file:
//
//	matrix:
//	  - [5, 4, 2]
//	  - [4, 5, 4]
//	  - [2, 4, 5]
type matrixDocument struct {
	Matrix types.PowerMatrix `yaml:"matrix"`
}

// File implements a matrix source backed by a file on disk.
//
// The file is read on every LoadMatrix call, so edits are picked up without
// restarting. The format is chosen from the extension: .yaml, .yml and .json
// decode as YAML, .csv as CSV.
type File struct {
	path   string
	format Format
}

var _ types.MatrixSource = (*File)(nil)

// NewFile creates a file-backed matrix source.
//
// Returns:
//   - *File: Initialized file source
//   - error: ErrUnknownFormat if the extension is not recognized
func NewFile(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return &File{path: path, format: format}, nil
}

// Path returns the file path the source reads.
func (f *File) Path() string {
	return f.path
}

// LoadMatrix reads and decodes the file.
//
// Returns:
//   - types.PowerMatrix: The decoded matrix (not yet validated)
//   - error: ErrSourceUnavailable wrapped with the read or decode cause
func (f *File) LoadMatrix(ctx context.Context) (types.PowerMatrix, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnavailable, err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrSourceUnavailable, err)
	}

	c, err := Decode(data, f.format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrSourceUnavailable, f.path, err)
	}

	return c, nil
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode parses a matrix document in the given format.
//
// Parameters:
//   - data: Raw document bytes
//   - format: FormatYAML or FormatCSV
//
// Returns:
//   - types.PowerMatrix: The decoded matrix (not yet validated)
//   - error: Decode error or ErrUnknownFormat
func Decode(data []byte, format Format) (types.PowerMatrix, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatCSV:
		return decodeCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Encode writes c in the given format, in the layout Decode reads.
func Encode(w io.Writer, c types.PowerMatrix, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(flowDocument(c)); err != nil {
			return fmt.Errorf("encode yaml matrix: %w", err)
		}

		return enc.Close()
	case FormatCSV:
		cw := csv.NewWriter(w)
		for _, row := range c {
			record := make([]string, len(row))
			for j, v := range row {
				record[j] = strconv.FormatInt(v, 10)
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("encode csv matrix: %w", err)
			}
		}
		cw.Flush()

		return cw.Error()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func decodeYAML(data []byte) (types.PowerMatrix, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc matrixDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty matrix document")
		}

		return nil, fmt.Errorf("decode yaml matrix: %w", err)
	}
	if doc.Matrix == nil {
		return nil, errors.New(`matrix document has no "matrix" key`)
	}

	return doc.Matrix, nil
}

func decodeCSV(r io.Reader) (types.PowerMatrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var c types.PowerMatrix
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv matrix: %w", err)
		}

		row := make([]int64, len(record))
		for j, field := range record {
			v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("decode csv matrix: row %d column %d: %w", line, j+1, err)
			}
			row[j] = v
		}
		c = append(c, row)
	}

	if len(c) == 0 {
		return nil, errors.New("empty matrix document")
	}

	return c, nil
}

// flowDocument renders every row on one line, e.g. "- [5, 4, 2]".
func flowDocument(c types.PowerMatrix) *yaml.Node {
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range c {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)})
		}
		rows.Content = append(rows.Content, seq)
	}

	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "matrix"},
			rows,
		},
	}
}
