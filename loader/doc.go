// Package loader locates, opens and binds driver artifacts.
//
// An artifact is a loadable unit named libmysyslog-<driver>.so that
// exports one function, DriverWrite, with the signature of WriteFunc.
// Resolution is two-tier: SearchPath.Resolve returns the candidate in the
// local directory when that file exists and the system directory
// candidate otherwise, so a developer can shadow an installed driver
// without touching the system.
//
// Loader opens a resolved path and returns an Artifact, Bind resolves the
// entry point, and Artifact.Close releases it. Two loaders are provided.
// Builtin serves drivers compiled into the binary and matches only on the
// artifact file name. Plugin maps real shared objects with the standard
// plugin package; because Go cannot unload a plugin, closing a plugin
// artifact only invalidates the handle.
package loader
