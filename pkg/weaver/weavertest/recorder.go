package weavertest

import (
	"sort"
	"sync"

	"github.com/weaver-go/weaver/pkg/weaver/entity"
)

// Definition is one recorded Define call.
type Definition struct {
	Scope string
	Name  string
	Value any
}

// Qualified returns Scope and Name joined with a dot.
func (d Definition) Qualified() string {
	return join(d.Scope, d.Name)
}

type journal struct {
	mu       sync.Mutex
	defs     []Definition
	scopes   map[string]*Recorder
	failures map[string]error
}

// Recorder is an entity.Target that records definitions in memory. All
// Recorders derived from one NewRecorder share a journal and are safe for
// concurrent use.
type Recorder struct {
	path string
	j    *journal
}

// NewRecorder returns an empty root recorder.
func NewRecorder() *Recorder {
	j := &journal{
		scopes:   make(map[string]*Recorder),
		failures: make(map[string]error),
	}
	root := &Recorder{j: j}
	j.scopes[""] = root
	return root
}

// Path returns the dotted scope path of r; the root's path is empty.
func (r *Recorder) Path() string { return r.path }

// Define records value under name in r.
func (r *Recorder) Define(name string, value any) error {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	if err := r.j.failures[join(r.path, name)]; err != nil {
		return err
	}
	r.j.defs = append(r.j.defs, Definition{Scope: r.path, Name: name, Value: value})
	return nil
}

// Subscope returns the child recorder called name, creating it on first use.
func (r *Recorder) Subscope(name string) (entity.Target, error) {
	path := join(r.path, name)
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	if err := r.j.failures[path]; err != nil {
		return nil, err
	}
	child, ok := r.j.scopes[path]
	if !ok {
		child = &Recorder{path: path, j: r.j}
		r.j.scopes[path] = child
	}
	return child, nil
}

// FailOn makes Define (or Subscope) of the qualified name return err.
func (r *Recorder) FailOn(qualified string, err error) {
	r.j.mu.Lock()
	r.j.failures[qualified] = err
	r.j.mu.Unlock()
}

// Definitions returns every definition recorded so far, in call order.
func (r *Recorder) Definitions() []Definition {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	return append([]Definition(nil), r.j.defs...)
}

// Names returns the qualified names of all definitions, in call order.
func (r *Recorder) Names() []string {
	defs := r.Definitions()
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.Qualified()
	}
	return out
}

// Lookup returns the value most recently defined under the qualified name.
func (r *Recorder) Lookup(qualified string) (any, bool) {
	defs := r.Definitions()
	for i := len(defs) - 1; i >= 0; i-- {
		if defs[i].Qualified() == qualified {
			return defs[i].Value, true
		}
	}
	return nil, false
}

// Scopes returns the paths of every subscope created so far, sorted.
func (r *Recorder) Scopes() []string {
	r.j.mu.Lock()
	defer r.j.mu.Unlock()
	out := make([]string, 0, len(r.j.scopes))
	for p := range r.j.scopes {
		if p != "" {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func join(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

var _ entity.Target = (*Recorder)(nil)
