package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateMetadataFlag validates a callout metadata flag such as "bordered".
//
// Flags are written verbatim into the callout header between pipes, so they
// must not contain the characters that delimit the header:
//   - No empty flags
//   - No pipes or square brackets
//   - No whitespace or control characters
//   - Maximum length of 64 characters
func ValidateMetadataFlag(flag string) error {
	if flag == "" {
		return New(ErrCodeInvalidFlag, "metadata flag cannot be empty")
	}

	const maxFlagLength = 64
	if len(flag) > maxFlagLength {
		return New(ErrCodeInvalidFlag, "metadata flag too long (max %d characters)", maxFlagLength)
	}

	for _, r := range flag {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidFlag, "metadata flag %q contains whitespace or control characters", flag)
		}
	}

	if strings.ContainsAny(flag, "|[]") {
		return New(ErrCodeInvalidFlag, "metadata flag %q contains invalid characters", flag)
	}

	return nil
}

// markdownExtensions lists the file extensions accepted as markdown documents.
var markdownExtensions = map[string]bool{".md": true, ".markdown": true, ".mdown": true, ".mkd": true}

// ValidateDocumentPath validates the path of a markdown document to edit.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must carry a markdown extension (.md, .markdown, .mdown, .mkd)
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !markdownExtensions[ext] {
		return New(ErrCodeInvalidPath, "%s is not a markdown document", filepath.Base(path))
	}

	return nil
}
