// SPDX-License-Identifier: MIT
// Package: varcut/circuit
//
// trace.go — inspection-mode execution as an explicit pull iterator.
//
// Contract:
//   • Finite: exactly one StepInfo per gate, in application order.
//   • Pull-based: no gate executes until Next is called; stopping early
//     simply abandons the remaining gates (nothing to cancel).
//   • Non-restartable: a fresh NewTrace is required to replay.
//   • Snapshots are copies; mutating a yielded StepInfo never affects
//     the running state.

package circuit

import (
	"fmt"
	"math/rand"
)

// Trace walks a gate sequence one step at a time, carrying the mutated
// bit assignment as running state between yields. It is the only
// interface through which an external visualization layer observes the
// algorithm's internals.
type Trace struct {
	gates []Gate
	bits  []int
	rng   *rand.Rand
	next  int
}

// NewTrace prepares an inspection run over the gate sequence starting
// from a private copy of initial.
func NewTrace(initial []int, gates []Gate, rng *rand.Rand) (*Trace, error) {
	if err := validateRun("NewTrace", initial, gates, rng); err != nil {
		return nil, err
	}

	bits := make([]int, len(initial))
	copy(bits, initial)

	return &Trace{gates: gates, bits: bits, rng: rng}, nil
}

// Len reports the total number of steps the trace will yield.
func (t *Trace) Len() int { return len(t.gates) }

// Remaining reports how many steps have not been pulled yet.
func (t *Trace) Remaining() int { return len(t.gates) - t.next }

// Bits returns a copy of the current running assignment.
func (t *Trace) Bits() []int {
	out := make([]int, len(t.bits))
	copy(out, t.bits)

	return out
}

// Next executes exactly one gate and yields its StepInfo. The second
// return is false once the sequence is exhausted; the trace cannot be
// rewound.
func (t *Trace) Next() (StepInfo, bool) {
	if t.next >= len(t.gates) {
		return StepInfo{}, false
	}

	g := t.gates[t.next]
	t.next++

	before := t.Bits()
	input, output, probs := sample(g, t.bits, t.rng)
	after := t.Bits()

	return StepInfo{
		Source:     g.Source,
		Target:     g.Target,
		Matrix:     g.M,
		Input:      input,
		Output:     output,
		Probs:      probs,
		BitsBefore: before,
		BitsAfter:  after,
	}, true
}

// String summarizes progress, mainly for debug logs in hosts.
func (t *Trace) String() string {
	return fmt.Sprintf("circuit.Trace{step %d/%d}", t.next, len(t.gates))
}
