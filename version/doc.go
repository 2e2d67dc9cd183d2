// Package version reports build information for seqkit commands.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.2.0" ./cmd/streamdemo
//
// Missing values fall back to the VCS settings recorded by the Go toolchain.
package version
