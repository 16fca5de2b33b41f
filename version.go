package custody

// release is the version of this build. Tagged builds override it and
// GitCommit through -ldflags.
var release = "v0.1.0-dev"

// GitCommit is the commit the binary was built from, if known.
var GitCommit = ""

// Version is reported by custodyd version and in the ABCI info response.
func Version() string {
	if GitCommit == "" {
		return release
	}
	return release + " " + GitCommit
}
