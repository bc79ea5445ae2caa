package weaver

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// RuntimeVersion returns the version of the weaver runtime. Generated code may
// compare it against the version it was generated for.
func RuntimeVersion() string {
	return Version
}
