package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshgrowth/internal/errors"
)

func TestFileValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name          string
		setupFunc     func(t *testing.T) string
		wantErr       bool
		wantErrType   errors.ErrorType
		errorContains string
	}{
		{
			name: "valid file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "input.csv")
				require.NoError(t, os.WriteFile(file, []byte("a,b\n"), 0644))
				return file
			},
			wantErr: false,
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:       true,
			wantErrType:   errors.ErrTypeMissingFile,
			errorContains: "missing or unreadable",
		},
		{
			name: "path is directory not file",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:     true,
			wantErrType: errors.ErrTypeMissingFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewFileValidator(slog.Default())
			path := tt.setupFunc(t)

			err := validator.ValidateFile(path)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, tt.wantErrType))
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileValidator_ValidateInputFile(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T) string
		wantErr     bool
		wantErrType errors.ErrorType
	}{
		{
			name: "csv file accepted",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "input.csv")
				require.NoError(t, os.WriteFile(file, []byte("a,b\n"), 0644))
				return file
			},
			wantErr: false,
		},
		{
			name: "xlsx file accepted",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "input.xlsx")
				require.NoError(t, os.WriteFile(file, []byte("stub"), 0644))
				return file
			},
			wantErr: false,
		},
		{
			name: "unsupported extension rejected",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "input.parquet")
				require.NoError(t, os.WriteFile(file, []byte("stub"), 0644))
				return file
			},
			wantErr:     true,
			wantErrType: errors.ErrTypeSchema,
		},
		{
			name: "temporary excel file rejected",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "~$input.xlsx")
				require.NoError(t, os.WriteFile(file, []byte("stub"), 0644))
				return file
			},
			wantErr:     true,
			wantErrType: errors.ErrTypeSchema,
		},
		{
			name: "missing file reported before format",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.parquet")
			},
			wantErr:     true,
			wantErrType: errors.ErrTypeMissingFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := NewFileValidator(slog.Default())
			path := tt.setupFunc(t)

			err := validator.ValidateInputFile(path)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, tt.wantErrType))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileValidator_ValidateOutputDirectory(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		validator := NewFileValidator(slog.Default())
		dir := filepath.Join(t.TempDir(), "reports", "nested")

		require.NoError(t, validator.ValidateOutputDirectory(dir))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("accepts existing directory", func(t *testing.T) {
		validator := NewFileValidator(slog.Default())
		dir := t.TempDir()

		assert.NoError(t, validator.ValidateOutputDirectory(dir))

		// Probe file must not be left behind
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
