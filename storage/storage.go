// Package storage loads and saves documents at local paths
// or any location supported by afs (file://, mem://, ...).
// Locations ending with .svgz are gzip compressed.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

const (
	fileScheme = "file"
	fileMode   = 0o644
)

// ErrNotLocal is returned by LocalPath for remote locations.
var ErrNotLocal = errors.New("location is not a local file")

// Store reads and writes documents.
type Store struct {
	fs afs.Service
}

// New returns a Store backed by the default afs service.
func New() *Store {
	return &Store{fs: afs.New()}
}

// Load returns the (decompressed) content at URL.
func (s *Store) Load(ctx context.Context, URL string) ([]byte, error) {
	data, err := s.fs.DownloadWithURL(ctx, normalize(URL))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", URL, err)
	}
	if !isCompressed(URL) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", URL, err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", URL, err)
	}
	return out, nil
}

// Save writes data at URL, compressing it when needed.
func (s *Store) Save(ctx context.Context, URL string, data []byte) error {
	if isCompressed(URL) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compressing %s: %w", URL, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compressing %s: %w", URL, err)
		}
		data = buf.Bytes()
	}
	if err := s.fs.Upload(ctx, normalize(URL), fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("saving %s: %w", URL, err)
	}
	return nil
}

// Exists reports whether something is stored at URL.
func (s *Store) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, normalize(URL))
}

// LocalPath returns the file system path of a local location.
func LocalPath(URL string) (string, error) {
	if url.Scheme(URL, fileScheme) != fileScheme {
		return "", fmt.Errorf("%w: %s", ErrNotLocal, URL)
	}
	if !strings.Contains(URL, "://") {
		return filepath.Abs(URL)
	}
	return url.Path(URL), nil
}

// normalize turns relative local paths into absolute ones,
// leaving URLs untouched.
func normalize(URL string) string {
	if strings.Contains(URL, "://") {
		return URL
	}
	if abs, err := filepath.Abs(URL); err == nil {
		return abs
	}
	return URL
}

func isCompressed(URL string) bool {
	return strings.EqualFold(filepath.Ext(URL), ".svgz")
}
