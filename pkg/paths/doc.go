// Package paths centralizes the filesystem locations preload reads from and
// writes to. Directories follow the XDG Base Directory layout through
// github.com/adrg/xdg, with PRELOAD_* environment overrides taking priority.
//
// Locations are resolved on every call, so environment changes made after
// startup (tests use t.Setenv) are honored.
package paths
