package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

var allowedExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".svg":  true,
}

// ValidateImageExtension rejects uploads that are not a known image type.
func ValidateImageExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext == "" {
		return errors.New("file extension missing")
	}

	if !allowedExt[ext] {
		return errors.New("file type not allowed")
	}

	return nil
}
