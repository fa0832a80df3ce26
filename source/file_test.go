package source

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/volley/types"
)

var example = types.PowerMatrix{{5, 4, 2}, {4, 5, 4}, {2, 4, 5}}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFile_LoadMatrix(t *testing.T) {
	t.Run("reads yaml", func(t *testing.T) {
		path := writeFile(t, "m.yaml", "matrix:\n  - [5, 4, 2]\n  - [4, 5, 4]\n  - [2, 4, 5]\n")
		src, err := NewFile(path)
		require.NoError(t, err)
		require.Equal(t, path, src.Path())

		c, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)
		require.Equal(t, example, c)
	})

	t.Run("reads json", func(t *testing.T) {
		path := writeFile(t, "m.json", `{"matrix": [[1, 2], [3, 4]]}`)
		src, err := NewFile(path)
		require.NoError(t, err)

		c, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)
		require.Equal(t, types.PowerMatrix{{1, 2}, {3, 4}}, c)
	})

	t.Run("reads csv with comments and spaces", func(t *testing.T) {
		path := writeFile(t, "m.csv", "# targets x periods\n5, 4, 2\n4,5,4\n2, 4, 5\n")
		src, err := NewFile(path)
		require.NoError(t, err)

		c, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)
		require.Equal(t, example, c)
	})

	t.Run("keeps ragged rows for validation", func(t *testing.T) {
		path := writeFile(t, "m.csv", "1,2\n3\n")
		src, err := NewFile(path)
		require.NoError(t, err)

		c, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)
		require.ErrorIs(t, c.Validate(), types.ErrInvalidMatrix)
	})

	t.Run("picks up edits", func(t *testing.T) {
		path := writeFile(t, "m.csv", "1\n")
		src, err := NewFile(path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("7\n"), 0o600))
		c, err := src.LoadMatrix(context.Background())
		require.NoError(t, err)
		require.Equal(t, types.PowerMatrix{{7}}, c)
	})

	t.Run("wraps failures as source unavailable", func(t *testing.T) {
		src, err := NewFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		_, err = src.LoadMatrix(context.Background())
		require.ErrorIs(t, err, types.ErrSourceUnavailable)
		require.ErrorIs(t, err, os.ErrNotExist)

		for name, content := range map[string]string{
			"bad.csv":    "1,x\n",
			"empty.csv":  "",
			"bad.yaml":   "matrix: nope\n",
			"nokey.yaml": "rows: [[1]]\n",
			"empty.yaml": "",
			"extra.yaml": "matrix: [[1]]\nk: 2\n",
		} {
			src, err := NewFile(writeFile(t, name, content))
			require.NoError(t, err)
			_, err = src.LoadMatrix(context.Background())
			require.ErrorIs(t, err, types.ErrSourceUnavailable, name)
		}
	})

	t.Run("honors cancelled context", func(t *testing.T) {
		src, err := NewFile(writeFile(t, "m.csv", "1\n"))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = src.LoadMatrix(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.json": FormatYAML,
		"a.csv":  FormatCSV,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		require.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("matrix.txt")
	require.ErrorIs(t, err, ErrUnknownFormat)

	_, err = NewFile("matrix")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncode(t *testing.T) {
	t.Run("yaml output decodes back", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, example, FormatYAML))
		require.Contains(t, buf.String(), "- [5, 4, 2]")

		c, err := Decode(buf.Bytes(), FormatYAML)
		require.NoError(t, err)
		require.Equal(t, example, c)
	})

	t.Run("csv output decodes back", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, example, FormatCSV))
		require.Equal(t, "5,4,2\n4,5,4\n2,4,5\n", buf.String())

		c, err := Decode(buf.Bytes(), FormatCSV)
		require.NoError(t, err)
		require.Equal(t, example, c)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		require.ErrorIs(t, Encode(&bytes.Buffer{}, example, "xml"), ErrUnknownFormat)
		_, err := Decode(nil, "xml")
		require.ErrorIs(t, err, ErrUnknownFormat)
	})
}
