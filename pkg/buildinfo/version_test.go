package buildinfo

import (
	"strings"
	"testing"
)

func TestCreator(t *testing.T) {
	tests := []struct {
		version, commit string
		want            string
	}{
		{"dev", "none", "badge-pdf-creator dev"},
		{"v1.2.0", "", "badge-pdf-creator v1.2.0"},
		{"v1.2.0", "abc123", "badge-pdf-creator v1.2.0 (abc123)"},
	}

	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Creator(); got != tt.want {
			t.Errorf("Creator() with %q/%q = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "built: "+Date) {
		t.Errorf("Template() = %q, want build date", got)
	}
}
