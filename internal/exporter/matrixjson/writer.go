package matrixjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"uva-matrix/internal/model"
)

// ErrEmptyDocument is returned when a vehicle has no entries to write
var ErrEmptyDocument = errors.New("document has no entries")

// Extension of every matrix document
const Extension = ".json"

// Writer serializes vehicle documents as <dir>/<vehicle id>.json
type Writer struct {
	fs     afero.Fs
	dir    string
	indent string
}

// NewWriter creates a Writer rooted at dir on the given filesystem
func NewWriter(fs afero.Fs, dir, indent string) *Writer {
	return &Writer{
		fs:     fs,
		dir:    dir,
		indent: indent,
	}
}

// Path returns the output path for a vehicle ID
func (w *Writer) Path(vehicleID string) string {
	return filepath.Join(w.dir, vehicleID+Extension)
}

// Encode renders entries as indented JSON with non-ASCII and HTML characters left as-is
func Encode(entries []model.Entry, indent string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(entries); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes doc and replaces any existing file for the same vehicle.
// The document is written to a temp file in the target directory and renamed
// into place, so readers never see a half-written file.
func (w *Writer) Write(doc *model.Document) (string, error) {
	if len(doc.Entries) == 0 {
		return "", fmt.Errorf("vehicle %s: %w", doc.VehicleID, ErrEmptyDocument)
	}

	data, err := Encode(doc.Entries, w.indent)
	if err != nil {
		return "", fmt.Errorf("failed to encode vehicle %s: %w", doc.VehicleID, err)
	}

	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := afero.TempFile(w.fs, w.dir, "."+doc.VehicleID+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		w.fs.Remove(tmpName)
		return "", fmt.Errorf("failed to write vehicle %s: %w", doc.VehicleID, err)
	}
	if err := tmp.Close(); err != nil {
		w.fs.Remove(tmpName)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	target := w.Path(doc.VehicleID)
	if err := w.fs.Rename(tmpName, target); err != nil {
		w.fs.Remove(tmpName)
		return "", fmt.Errorf("failed to move %s into place: %w", filepath.Base(target), err)
	}

	return target, nil
}

// Read loads a previously written matrix document
func Read(fs afero.Fs, path string) ([]model.Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}
