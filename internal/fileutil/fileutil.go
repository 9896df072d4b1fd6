// Package fileutil reads and writes document files for the codecs, with
// transparent xz compression keyed on the .xz filename suffix. Dictionary
// exports and backups are large and repetitive, so compressed storage is
// the common case for archived documents.
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
)

// IsCompressed reports whether the path names an xz-compressed file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, ".xz")
}

// ReadDocument reads a document file, decompressing when the path ends in
// .xz. Returns the document text.
func ReadDocument(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if IsCompressed(path) {
		xr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("failed to open xz stream in %s: %w", path, err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteDocument writes a document file, compressing when the path ends in
// .xz. The write goes through a temporary file in the target directory and
// renames into place, so readers never observe a half-written document.
func WriteDocument(path, doc string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeTo(tmp, path, doc); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func writeTo(w io.Writer, path, doc string) error {
	if !IsCompressed(path) {
		if _, err := io.Copy(w, strings.NewReader(doc)); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}

	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to start xz stream for %s: %w", path, err)
	}
	if _, err := io.Copy(xw, strings.NewReader(doc)); err != nil {
		xw.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := xw.Close(); err != nil {
		return fmt.Errorf("failed to finish xz stream for %s: %w", path, err)
	}
	return nil
}

// Decompress decompresses an xz byte stream in memory.
func Decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xz stream: %w", err)
	}
	return io.ReadAll(r)
}

// Compress compresses a byte stream with xz in memory.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to start xz stream: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish xz stream: %w", err)
	}
	return buf.Bytes(), nil
}
