// Package core defines the shared domain vocabulary of spinorbit:
// value types (Spin, StateInfo, StateWeights), the spatial→spin-orbital
// index map, and the capability interfaces through which external
// collaborators are consumed (IntegralSource, RDMs, Solver).
//
// The collaborators are modeled as interfaces, not concrete types, so a
// production integral provider and a hand-computed test double are
// interchangeable. DenseSource and DenseRDMs are the in-package concrete
// implementations backed by flat row-major slices; they double as the
// file-loaded providers used by the command-line tool and as test
// fixtures.
//
// Determinism contract: StateWeights is a Go map and therefore unordered;
// every consumer that iterates it must do so via SortedStates, which
// yields keys in StateInfo.Less order. This is what makes repeated
// exports byte-identical.
package core
