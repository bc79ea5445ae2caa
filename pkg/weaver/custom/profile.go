package custom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// ErrProfileFormat reports a profile file with an unsupported extension.
var ErrProfileFormat = errors.New("weaver/custom: unsupported profile format")

// Profile is the file form of an integrator's customizations.
//
//	# weaver.toml
//	root_subscope = "all_feature_module"
//	disable = ["disabled_space", "disabled_member::disabled_Foo"]
type Profile struct {
	// Disable lists unit names to construct as entity.Disabled.
	Disable []string `toml:"disable" yaml:"disable" hcl:"disable,optional"`
	// RootSubscope, when set, roots every top-level unit under the named
	// subscope of the declaration target.
	RootSubscope string `toml:"root_subscope" yaml:"root_subscope" hcl:"root_subscope,optional"`
}

// LoadProfile reads a profile, choosing the decoder from the extension:
// .toml, .yaml/.yml or .hcl. Unknown keys are rejected.
func LoadProfile(path string) (Profile, error) {
	var p Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &p)
		if err != nil {
			return Profile{}, fmt.Errorf("weaver/custom: profile parse failed (%s): %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Profile{}, fmt.Errorf("weaver/custom: profile %s: unknown keys %v", path, undecoded)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Profile{}, fmt.Errorf("weaver/custom: profile load failed (%s): %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
			return Profile{}, fmt.Errorf("weaver/custom: profile parse failed (%s): %w", path, err)
		}
	case ".hcl":
		file, diags := hclparse.NewParser().ParseHCLFile(path)
		if diags.HasErrors() {
			return Profile{}, fmt.Errorf("weaver/custom: profile parse failed (%s): %w", path, diags)
		}
		if diags := gohcl.DecodeBody(file.Body, hclEvalContext(), &p); diags.HasErrors() {
			return Profile{}, fmt.Errorf("weaver/custom: profile decode failed (%s): %w", path, diags)
		}
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileFormat, ext)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("weaver/custom: profile %s: %w", path, err)
	}
	return p, nil
}

// hclEvalContext exposes the process environment to HCL profiles as env.NAME,
// so a profile can pick its root from the build:
//
//	root_subscope = env.WEAVER_ROOT
func hclEvalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || !utf8.ValidString(k) || !utf8.ValidString(v) {
			continue
		}
		env[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(env)},
	}
}

// Validate rejects empty and repeated names.
func (p Profile) Validate() error {
	seen := make(map[string]struct{}, len(p.Disable))
	for i, name := range p.Disable {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("disable[%d]: %w", i, ErrEmptyName)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("disable[%d]: %w: %q", i, ErrDuplicateBinding, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Apply disables every name of p in reg.
func (p Profile) Apply(reg *Registry) error {
	for _, name := range p.Disable {
		if err := reg.DisableBinding(name); err != nil {
			return err
		}
	}
	return nil
}
