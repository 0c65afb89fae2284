// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// generate.go — kind-by-name dispatch for hosts that carry topology
// choices as configuration strings.

package builder

import (
	"errors"
	"fmt"

	"github.com/varcut/varcut/core"
)

// ErrUnknownKind indicates an unrecognized topology name.
// Usage: if errors.Is(err, ErrUnknownKind) { /* fix request */ }.
var ErrUnknownKind = errors.New("builder: unknown graph kind")

// Canonical topology names accepted by Generate.
const (
	KindComplete      = "complete"
	KindErdosRenyi    = "erdos_renyi"
	KindRandomRegular = "random_regular"
)

// Request names a topology and its parameters. P is read only by
// erdos_renyi, D only by random_regular.
type Request struct {
	Kind string
	N    int
	P    float64
	D    int
}

// Generate dispatches a Request to the matching constructor. All
// validation (probability range, regular-graph parity and degree) is
// performed by the constructor itself and surfaces as the usual
// sentinel errors.
func Generate(req Request, opts ...Option) (*core.Graph, error) {
	switch req.Kind {
	case KindComplete:
		return Build(opts, Complete(req.N))
	case KindErdosRenyi:
		return Build(opts, ErdosRenyi(req.N, req.P))
	case KindRandomRegular:
		return Build(opts, RandomRegular(req.N, req.D))
	default:
		return nil, fmt.Errorf("Generate(%q): %w", req.Kind, ErrUnknownKind)
	}
}
