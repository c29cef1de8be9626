// Package version holds the release string, overridable at link time:
//
//	go build -ldflags "-X invrep/internal/version.Version=1.2.3"
package version

// Version is the release string.
var Version = "0.1.0"
