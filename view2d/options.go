// SPDX-License-Identifier: MIT

// Package view2d: validation policy and functional configuration.
// This file defines:
//   - Policy (assert / error / none), the single knob of the package,
//   - Option / Options (functional options with internal state),
//   - WithPolicy, which panics on nonsensical values (programmer error),
//   - gatherOptions, the internal resolver used by every constructor.
//
// The system-wide default policy is a build-time constant (see
// policy_default.go, policy_assert.go, policy_nocheck.go). A composition root
// that needs another policy passes WithPolicy once to the constructor of its
// root views; every derived view inherits the policy of its parent.

package view2d

// Policy selects how policy-following operations report a violated
// precondition. It never changes any other behavior.
type Policy uint8

const (
	// PolicyError returns a wrapped sentinel error to the caller.
	PolicyError Policy = iota

	// PolicyAssert panics with the same wrapped sentinel error.
	// Intended for debug builds; recover() yields an error value.
	PolicyAssert

	// PolicyNone skips the check. A violation is undefined behavior: the
	// result may address elements outside the parent view, and Go's runtime
	// bounds checks are the only safety net left.
	PolicyNone

	policyCount // sentinel, keep last
)

// Policy names, used by String.
const (
	policyNameError  = "error"
	policyNameAssert = "assert"
	policyNameNone   = "none"
)

// panicPolicyInvalid is the stable panic message of WithPolicy.
const panicPolicyInvalid = "view2d: WithPolicy: unknown policy"

// String returns the policy name ("error", "assert", "none").
func (p Policy) String() string {
	switch p {
	case PolicyError:
		return policyNameError
	case PolicyAssert:
		return policyNameAssert
	case PolicyNone:
		return policyNameNone
	default:
		return "unknown"
	}
}

// valid reports whether p is one of the declared policies.
func (p Policy) valid() bool { return p < policyCount }

// fail reports err according to the policy: panic under PolicyAssert,
// otherwise hand it back. Callers skip the check entirely under PolicyNone.
func (p Policy) fail(err error) error {
	if p == PolicyAssert {
		panic(err)
	}

	return err
}

// Option mutates internal options. Safe to apply repeatedly; the last
// writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	policy Policy // DefaultPolicy unless overridden
}

// WithPolicy sets the validation policy of the constructed view and of every
// view derived from it.
//
// Errors:
//   - Panics with a stable message when p is not a declared Policy.
//
// Notes:
//   - Choose the policy once, at the composition root. Per-call switching is
//     not supported; the Checked* variants are the opt-in safe path.
func WithPolicy(p Policy) Option {
	if !p.valid() {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// NewOptions resolves opts over the documented defaults.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Policy returns the resolved validation policy.
func (o Options) Policy() Policy { return o.policy }

// gatherOptions starts from defaults and applies opts in order (nil skipped).
func gatherOptions(opts ...Option) Options {
	o := Options{policy: DefaultPolicy}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
