// Package version reports thirteen's version
package version

// BuildVersion is set at link time with
// `go build -ldflags="-X github.com/puppetlabs/thirteen/cmd/version.BuildVersion=${VERSION}"`.
var BuildVersion = "unknown"
