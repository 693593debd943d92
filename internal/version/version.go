package version

import "fmt"

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string printed by `printadmin --version`.
func String() string {
	return fmt.Sprintf("printadmin dev (commit: %s, built: %s)", shortCommit(), BuildTime)
}

// UserAgent returns the User-Agent header value sent to the print-shop API.
func UserAgent() string {
	return "printadmin/" + shortCommit()
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
