package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/larktraditionalarts/badge-pdf-creator/pkg/errors"
)

func TestRead(t *testing.T) {
	input := "badge_name,badge_title,badge_gender\n" +
		"Jane Jordan Smith,Board Member,she/her\n" +
		"Cher,,\n" +
		"\"Smith, Al\",Program Committee,he/him\n"

	got, err := Read(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := []Record{
		{Name: "Jane Jordan Smith", Title: "Board Member", Pronouns: "she/her", Line: 2},
		{Name: "Cher", Line: 3},
		{Name: "Smith, Al", Title: "Program Committee", Pronouns: "he/him", Line: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadHeaderMatching(t *testing.T) {
	input := "\ufeff Badge_Title , BADGE_NAME\n" +
		"Staff,  Ann  \n"

	got, err := Read(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []Record{{Name: "Ann", Title: "Staff", Line: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadCustomColumns(t *testing.T) {
	input := "full name,role,pronouns\nAnn Lee,Staff,they/them\n"
	cols := Columns{Name: "full name", Title: "role", Pronouns: "pronouns"}

	got, err := Read(strings.NewReader(input), cols)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || got[0].Pronouns != "they/them" || got[0].Title != "Staff" {
		t.Errorf("Read() = %+v", got)
	}
}

func TestReadSkipsBlankRows(t *testing.T) {
	input := "badge_name,badge_title\nAnn,\n,\n\nBo,\n"

	got, err := Read(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "Ann" || got[1].Name != "Bo" {
		t.Errorf("Read() = %+v, want Ann and Bo", got)
	}
}

func TestReadShortRows(t *testing.T) {
	input := "badge_name,badge_title,badge_gender\nAnn\n"

	got, err := Read(strings.NewReader(input), DefaultColumns())
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "" || got[0].Pronouns != "" {
		t.Errorf("Read() = %+v", got)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty input", "", "header"},
		{"missing name column", "title,gender\nStaff,\n", "missing name column"},
		{"empty name", "badge_name,badge_title\nAnn,Staff\n,Board\n", "line 3"},
		{"bad quoting", "badge_name\n\"Ann\n", "read input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), DefaultColumns())
			if err == nil {
				t.Fatal("Read() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("badge_name\nAnn\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, DefaultColumns())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("ReadFile() = %d records, want 1", len(got))
	}

	_, err = ReadFile(filepath.Join(dir, "missing.csv"), DefaultColumns())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}
