// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/displaypicture/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/displaypicture/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/displaypicture/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/displaypicture
package buildinfo

import "fmt"

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// shortCommit is the number of commit characters shown by [Short].
const shortCommit = 7

// Short returns a one-line version such as "v1.2.0 (3f2a9c1)", used in the
// settings screen footer.
func Short() string {
	c := Commit
	if len(c) > shortCommit {
		c = c[:shortCommit]
	}
	return fmt.Sprintf("%s (%s)", Version, c)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
