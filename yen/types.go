// Package yen defines configuration options and sentinel errors for the
// top-K shortest simple paths search.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrNilCost        if no cost evaluator is provided.
//	– ErrVertexNotFound if the start or end vertex does not exist.
package yen

import (
	"errors"

	"github.com/veydrin/waylith/core"
)

// Sentinel errors returned by KShortest.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("yen: graph is nil")

	// ErrNilCost indicates that a nil cost evaluator was passed in.
	ErrNilCost = errors.New("yen: cost evaluator is nil")

	// ErrVertexNotFound indicates that the start or end vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("yen: vertex not found in graph")
)

// Options configures a KShortest invocation.
//
// Direction – traversal orientation, fixed for the whole call including
// every nested single-pair search. Default core.Outgoing.
type Options struct {
	Direction core.Direction
}

// Option represents a functional option for configuring KShortest.
type Option func(*Options)

// WithDirection sets the traversal orientation for the whole call.
// Validity is checked by KShortest (core.ErrInvalidDirection).
func WithDirection(dir core.Direction) Option {
	return func(o *Options) { o.Direction = dir }
}

// DefaultOptions returns the Options KShortest starts from before
// functional options are applied.
func DefaultOptions() Options {
	return Options{Direction: core.Outgoing}
}
