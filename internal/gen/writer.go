package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(fsys afero.Fs, files []GeneratedFile, outputDir string) error {
	if err := fsys.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := afero.WriteFile(fsys, outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Stale returns the names of files whose on-disk content under outputDir is
// missing or differs from the generated content.
func Stale(fsys afero.Fs, files []GeneratedFile, outputDir string) ([]string, error) {
	var stale []string

	for _, file := range files {
		current, err := afero.ReadFile(fsys, filepath.Join(outputDir, file.Filename))

		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, file.Filename)
		case err != nil:
			return nil, fmt.Errorf("reading file %s: %w", file.Filename, err)
		case !bytes.Equal(current, file.Content):
			stale = append(stale, file.Filename)
		}
	}

	return stale, nil
}
