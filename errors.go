// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package flow

import "fmt"

// ConstraintError is returned when a measure pass is given a constraint it
// cannot work with, such as an unbounded width.
type ConstraintError struct {
	Axis string
	Mode Mode
}

func (e *ConstraintError) Error() string {
	if e.Axis == "width" && e.Mode == Unbounded {
		return "flow: width constraint must be bounded"
	}
	return fmt.Sprintf("flow: invalid %s constraint mode %s", e.Axis, e.Mode)
}

// InvalidPolicyError is returned when an alignment is not one of [Left],
// [Right], [Center] or [Staggered].
type InvalidPolicyError struct {
	Alignment Alignment
	// Name is set when the error came from parsing an alignment name.
	Name string
}

func (e *InvalidPolicyError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("flow: unknown alignment %q", e.Name)
	}
	return fmt.Sprintf("flow: invalid alignment policy %s", e.Alignment)
}
