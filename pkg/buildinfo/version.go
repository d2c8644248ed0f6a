// Package buildinfo carries the version stamped into the ukechords binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/ukechords/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/ukechords/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/ukechords/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/ukechords
package buildinfo

import "fmt"

// Binary is the command name shown in version output and the TUI title.
const Binary = "ukechords"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"

	// Commit is the short git SHA.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Short returns "ukechords <version>".
func Short() string {
	return Binary + " " + Version
}

// String returns the multi-line build description.
func String() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt: %s", Short(), Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
