// Package operations implements the repository command set: creating,
// cloning, removing, renaming, backing up and restoring bare repositories,
// and reading or writing their gitweb metadata and export marker.
//
// Service returns errors from every operation. GuardedService applies the
// exit and fallback policies from package policy and is what the CLI uses.
// Every method taking a repository name canonicalizes it first, so "demo"
// and "demo.git" are interchangeable; Private is the one exception.
package operations
