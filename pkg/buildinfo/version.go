// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/larktraditionalarts/badge-pdf-creator/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/larktraditionalarts/badge-pdf-creator/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/larktraditionalarts/badge-pdf-creator/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/badges
package buildinfo

import "fmt"

// Name is the program name recorded as the creator of generated documents.
const Name = "badge-pdf-creator"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Creator returns the creator string written into PDF metadata. It leaves
// out Date so that rebuilding the same commit keeps output reproducible.
func Creator() string {
	if Commit == "none" || Commit == "" {
		return fmt.Sprintf("%s %s", Name, Version)
	}
	return fmt.Sprintf("%s %s (%s)", Name, Version, Commit)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
