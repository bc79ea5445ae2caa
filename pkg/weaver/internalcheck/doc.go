// Package internalcheck holds static policy tests over the weaver module.
//
// The tests load the module with golang.org/x/tools/go/packages and fail on:
//
//   - imports of "unsafe" or "C" outside pkg/weaver/handle and
//     internal/bindings;
//   - package-level maps or mutexes outside internal/bindings, whose
//     process-wide callback table is the one registry native function
//     pointers force to be global.
//
// It is not intended for import.
package internalcheck
