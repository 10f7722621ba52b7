package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first entry.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filename, data)
}

// Decompress inflates data according to the extension of filename. Raw
// images (.gb, .bin, no extension, unknown extensions) are returned as is.
func Decompress(filename string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip %s: %w", filename, err)
		}
		defer r.Close()
		decoder = r
	case ".zip":
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("zip %s: %w", filename, err)
		}
		if len(zr.File) == 0 {
			return nil, fmt.Errorf("zip %s: archive is empty", filename)
		}
		rc, err := zr.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("zip %s: %w", filename, err)
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		sr, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("7z %s: %w", filename, err)
		}
		if len(sr.File) == 0 {
			return nil, fmt.Errorf("7z %s: archive is empty", filename)
		}
		rc, err := sr.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("7z %s: %w", filename, err)
		}
		defer rc.Close()
		decoder = rc
	default:
		return data, nil
	}

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", filename, err)
	}
	return out, nil
}
