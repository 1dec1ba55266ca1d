package helpers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SplitFileName separates a base name from its extension. The extension is
// returned without the leading dot.
func SplitFileName(fileName string) (name string, extension string) {
	ext := filepath.Ext(fileName)
	if ext == fileName {
		// dotfiles such as ".env" have no extension
		return fileName, ""
	}
	return strings.TrimSuffix(fileName, ext), strings.TrimPrefix(ext, ".")
}

// NormalizeExtension strips any leading dots.
func NormalizeExtension(extension string) string {
	return strings.TrimLeft(extension, ".")
}

// UniqueStorageName builds a collision resistant object name from the
// current time and a random suffix, keeping the extension.
func UniqueStorageName(extension string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	extension = NormalizeExtension(extension)
	if extension == "" {
		return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
	}
	return fmt.Sprintf("%d-%s.%s", now.UnixMilli(), suffix, extension)
}
