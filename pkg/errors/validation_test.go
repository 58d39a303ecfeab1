package errors

import (
	"strings"
	"testing"
)

func TestValidateTemplateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Plain", false},
		{"with dash", "Board-2024", false},
		{"with underscore", "staff_lead", false},
		{"digits", "2024", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
		{"path traversal", "../Plain", true},
		{"slash", "a/b", true},
		{"space", "Board Member", true},
		{"leading dash", "-x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRule) {
				t.Errorf("ValidateTemplateID(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidRule)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "img/template-Plain.png", false},
		{"absolute", "/srv/camp/data.csv", false},
		{"empty", "", true},
		{"null byte", "a\x00b", true},
		{"newline", "a\nb", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "badges.pdf", false},
		{"upper ext", "out/Badges.PDF", false},
		{"wrong ext", "badges.png", true},
		{"no ext", "badges", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
