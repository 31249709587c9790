package reader_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/MiniGrep/internal/reader"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	inputLine := "line1\nline2\nline3\nline4\n"

	cases := []struct {
		name    string
		isDir   bool
		isReal  bool // false только для кейса "файл не найден"
		wantErr string
	}{
		{
			name:   "Positive - 1 file",
			isReal: true,
		},
		{
			name:    "Negative - file is a directory",
			isDir:   true,
			isReal:  true,
			wantErr: "is a directory",
		},
		{
			name:    "Negative - file not found",
			isReal:  false,
			wantErr: "test_unreal_file_12345.txt",
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			fileName := filepath.Join(t.TempDir(), "test_unreal_file_12345.txt")
			if tt.isReal {
				fileName = createTempFile(t, inputLine, tt.isDir)
			}

			res, err := reader.ReadInput(fileName)

			switch tt.wantErr {
			case "":
				require.NoError(t, err)
				require.Equal(t, inputLine, res, "Content is not equal to the file content")
			default:
				require.ErrorContains(t, err, tt.wantErr)
				var loadErr *reader.SourceLoadError
				require.True(t, errors.As(err, &loadErr), "error should be a SourceLoadError")
				require.Equal(t, fileName, loadErr.Source)
			}
		})
	}
}

func TestReadInputNotExist(t *testing.T) {
	_, err := reader.ReadInput(filepath.Join(t.TempDir(), "missing.txt"))
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadInputInvalidUTF8(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(fileName, []byte{'o', 'k', '\n', 0xff, 0xfe, '\n'}, 0o644))

	res, err := reader.ReadInput(fileName)

	require.ErrorIs(t, err, reader.ErrInvalidUTF8)
	var loadErr *reader.SourceLoadError
	require.ErrorAs(t, err, &loadErr)
	require.Empty(t, res)
}

// вспомогательная функция для создания временного файла
func createTempFile(t *testing.T, content string, isDir bool) string {
	t.Helper()
	switch isDir {
	case true:
		return t.TempDir()
	default:
		f, err := os.CreateTemp(t.TempDir(), "minigrep_test_*.txt")
		if err != nil {
			t.Fatalf("failed to create temp-file: %v", err)
		}
		if _, err := f.WriteString(content); err != nil {
			t.Fatalf("failed to write provided content to temp-file: %v", err)
		}
		f.Close()
		return f.Name()
	}
}
