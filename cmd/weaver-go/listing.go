package main

import (
	"fmt"
	"io"

	"github.com/weaver-go/weaver/pkg/weaver/entity"
)

// listing is a declaration target that prints every definition.
type listing struct {
	w    io.Writer
	path string
}

func newListing(w io.Writer) *listing { return &listing{w: w} }

func (l *listing) Define(name string, value any) error {
	_, err := fmt.Fprintf(l.w, "define %s = %v\n", l.qualify(name), value)
	return err
}

func (l *listing) Subscope(name string) (entity.Target, error) {
	return &listing{w: l.w, path: l.qualify(name)}, nil
}

func (l *listing) qualify(name string) string {
	if l.path == "" {
		return name
	}
	return l.path + "." + name
}
