package archive

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/five82/linkshelf/internal/catalog"
)

// Errors returned by Export. Both abort the whole archive.
var (
	ErrArchiveInit     = errors.New("archive creation failed")
	ErrArchiveFinalize = errors.New("archive finalization failed")
)

const (
	// DefaultFolder is the directory entries are stored under inside the zip.
	DefaultFolder = "Buildings_Links_Archive"

	// DefaultPrefix names the archive file.
	DefaultPrefix = "Buildings_Links_Archive"
)

// ProgressFunc is called after each record is packaged. skipped is always 0
// today; it is kept for exporters that may fail individual items.
type ProgressFunc func(processed, total, skipped int)

// Exporter packages records into a zip of text files.
type Exporter struct {
	// Folder is the directory inside the archive. Empty stores entries at the root.
	Folder string
	// Level is the DEFLATE level; zero means flate.BestCompression.
	Level int
	// Now stamps entry modification times. Nil uses time.Now.
	Now func() time.Time
}

// NewExporter returns an exporter writing under folder with maximum
// compression. An empty folder stores entries at the archive root.
func NewExporter(folder string) *Exporter {
	return &Exporter{Folder: folder, Level: flate.BestCompression}
}

// Export renders one <quadkey>.txt entry per record and returns the finished
// archive bytes. Nothing is returned unless the whole archive was written.
func (e *Exporter) Export(records []catalog.Record, onProgress ProgressFunc) ([]byte, error) {
	level := e.Level
	if level == 0 {
		level = flate.BestCompression
	}
	// Surface a bad level before any entry is written.
	probe, err := flate.NewWriter(io.Discard, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveInit, err)
	}
	_ = probe.Close()

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, level)
	})

	total := len(records)
	for i, rec := range records {
		hdr := &zip.FileHeader{
			Name:     EntryName(e.Folder, rec.Quadkey),
			Method:   zip.Deflate,
			Modified: now(),
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("%w: add %s: %v", ErrArchiveFinalize, hdr.Name, err)
		}
		if _, err := io.WriteString(w, RenderEntry(rec)); err != nil {
			return nil, fmt.Errorf("%w: write %s: %v", ErrArchiveFinalize, hdr.Name, err)
		}
		if onProgress != nil {
			onProgress(i+1, total, 0)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveFinalize, err)
	}
	return buf.Bytes(), nil
}

// EntryName is the path of a record's text file inside the archive.
func EntryName(folder, quadkey string) string {
	name := quadkey + ".txt"
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

// FileName returns "<prefix>_<YYYY-MM-DD>.zip" for the UTC date of now.
func FileName(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s_%s.zip", prefix, now.UTC().Format("2006-01-02"))
}
