package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// templateIDRegex matches identifiers safe to splice into an asset file name.
var templateIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateTemplateID validates a badge template identifier.
// Identifiers become part of the default asset path (template-<ID>.png), so
// they are restricted to letters, digits, dash and underscore.
func ValidateTemplateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidRule, "template id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidRule, "template id too long (max 64 characters)")
	}
	if !templateIDRegex.MatchString(id) {
		return New(ErrCodeInvalidRule, "invalid template id: %q", id)
	}
	return nil
}

// ValidatePath validates a configured asset or output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputName validates the output file name of a sheet.
// It must be a path ending in .pdf.
func ValidateOutputName(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return New(ErrCodeInvalidPath, "output must be a .pdf file: %q", path)
	}
	return nil
}
