package weaver

import "github.com/weaver-go/weaver/pkg/weaver/logging"

// Config expresses the knobs of one declaration run.
type Config struct {
	// ProfilePath names an integrator profile (.toml, .yaml/.yml or .hcl)
	// whose disable list is applied to the registry. Empty means none.
	ProfilePath string

	// RootSubscope roots every top-level unit under the named subscope of the
	// declaration target. A profile's root_subscope takes precedence.
	RootSubscope string

	// Logger receives debug output. Nil means slog.Default().
	Logger logging.Logger
}
