// Package ingest handles the file side of extraction: reading transcript
// files with encoding fallback, and batch processing of directories. The
// extraction pipeline itself never touches the filesystem.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	mserrors "github.com/meetscan/meetscan/pkg/errors"
)

// transcriptExtensions are the file extensions accepted as transcripts.
// Extensionless files are accepted too, since exported chat logs often have
// no suffix.
var transcriptExtensions = map[string]struct{}{
	"":      {},
	".txt":  {},
	".text": {},
	".log":  {},
}

// IsTranscriptFile reports whether the path has a recognized transcript
// extension.
func IsTranscriptFile(path string) bool {
	_, ok := transcriptExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// ReadTranscript reads a transcript file and returns its decoded text.
//
// Files are decoded as UTF-8 first; bytes that are not valid UTF-8 fall back
// to Latin-1, which accepts any byte sequence, so legacy exports still load.
// An empty or whitespace-only file fails with ErrEmptyTranscript and an
// unrecognized extension with ErrUnsupportedFormat.
func ReadTranscript(path string) (string, error) {
	if !IsTranscriptFile(path) {
		return "", fmt.Errorf("%s: %w", filepath.Ext(path), mserrors.ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	text := string(data)
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding %s: %w", path, mserrors.ErrEncoding)
		}
		text = string(decoded)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s: %w", path, mserrors.ErrEmptyTranscript)
	}
	return text, nil
}
