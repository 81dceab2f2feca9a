package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"uva-matrix/internal/exporter/matrixjson"
)

// Item describes one matrix document found in the output directory
type Item struct {
	VehicleID string
	Path      string
	UpdatedAt time.Time
	Size      int64
	Entries   int
	Err       error // Set when the file exists but cannot be decoded
}

// List returns the matrix documents in dir sorted by vehicle ID.
// Temp files left by an interrupted write and non-JSON files are ignored.
// A missing directory yields an empty list.
func List(fs afero.Fs, dir string) ([]Item, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	var items []Item
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		name := info.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, matrixjson.Extension) {
			continue
		}

		item := Item{
			VehicleID: strings.TrimSuffix(name, matrixjson.Extension),
			Path:      filepath.Join(dir, name),
			UpdatedAt: info.ModTime(),
			Size:      info.Size(),
		}

		entries, err := matrixjson.Read(fs, item.Path)
		if err != nil {
			item.Err = err
		} else {
			item.Entries = len(entries)
		}
		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].VehicleID < items[j].VehicleID
	})

	return items, nil
}
