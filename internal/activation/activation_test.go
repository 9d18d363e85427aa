// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"math"
	"testing"
)

const tol = 1e-12

// TestActivate verifies each variant's activation value at reference points.
func TestActivate(t *testing.T) {
	tests := []struct {
		name string
		fn   Function
		x    float64
		want float64
	}{
		{"identity passes through", Identity(), -3.5, -3.5},
		{"linear passes through", Linear(), 2.25, 2.25},
		{"sigmoid at zero", Sigmoid(), 0, 0.5},
		{"sigmoid at one", Sigmoid(), 1, 1.0 / (1.0 + math.Exp(-1))},
		{"relu clamps negative", ReLU(), -1, 0},
		{"relu keeps positive", ReLU(), 2, 2},
		{"leaky relu scales negative", LeakyReLU(0.05), -2, -0.1},
		{"leaky relu keeps positive", LeakyReLU(0.05), 3, 3},
		{"tanh at zero", Tanh(), 0, 0},
		{"tanh at one", Tanh(), 1, math.Tanh(1)},
		{"softplus at zero", Softplus(), 0, math.Log(2)},
		{"swish at zero", Swish(), 0, 0},
		{"swish at one", Swish(), 1, 1.0 / (1.0 + math.Exp(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn.Activate(tt.x); math.Abs(got-tt.want) > tol {
				t.Errorf("Activate(%g) = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}

// TestDerivative verifies each variant's derivative at reference points.
func TestDerivative(t *testing.T) {
	tests := []struct {
		name string
		fn   Function
		x    float64
		want float64
	}{
		{"identity", Identity(), -3.5, 1},
		{"linear", Linear(), 7, 1},
		{"sigmoid at zero", Sigmoid(), 0, 0.25},
		{"relu negative", ReLU(), -1, 0},
		{"relu positive", ReLU(), 2, 1},
		{"leaky relu negative", LeakyReLU(0.05), -2, 0.05},
		{"leaky relu positive", LeakyReLU(0.05), 3, 1},
		{"tanh at zero", Tanh(), 0, 1},
		{"softplus at zero", Softplus(), 0, 0.5},
		{"swish at zero", Swish(), 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn.Derivative(tt.x); math.Abs(got-tt.want) > tol {
				t.Errorf("Derivative(%g) = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}

// TestSigmoidDerivativeIdentity checks the s·(1−s) form against the
// activation value.
func TestSigmoidDerivativeIdentity(t *testing.T) {
	fn := Sigmoid()
	for _, x := range []float64{-4, -0.5, 0, 0.5, 4} {
		s := fn.Activate(x)
		if got, want := fn.Derivative(x), s*(1-s); math.Abs(got-want) > tol {
			t.Errorf("Derivative(%g) = %g, want s(1-s) = %g", x, got, want)
		}
	}
}

// TestCodes verifies the serialization tokens, including the LeakyReLU
// slope suffix.
func TestCodes(t *testing.T) {
	tests := []struct {
		fn   Function
		want string
	}{
		{Identity(), "Identity"},
		{Sigmoid(), "Sigmoid"},
		{ReLU(), "ReLU"},
		{LeakyReLU(0.05), "LeakyReLU_0.05"},
		{Tanh(), "Tanh"},
		{Softplus(), "Softplus"},
		{Swish(), "Swish"},
		{Linear(), "Linear"},
	}

	for _, tt := range tests {
		if got := tt.fn.Code(); got != tt.want {
			t.Errorf("Code() = %q, want %q", got, tt.want)
		}
	}
}

// TestParseCodeRoundTrip checks that every variant survives a
// Code/ParseCode cycle.
func TestParseCodeRoundTrip(t *testing.T) {
	fns := []Function{
		Identity(), Sigmoid(), ReLU(), LeakyReLU(0.05),
		Tanh(), Softplus(), Swish(), Linear(),
	}
	for _, fn := range fns {
		if got := ParseCode(fn.Code()); got != fn {
			t.Errorf("ParseCode(%q) = %+v, want %+v", fn.Code(), got, fn)
		}
	}
}

// TestParseCodePermissive checks the degraded handling of unknown and
// malformed tokens.
func TestParseCodePermissive(t *testing.T) {
	if got := ParseCode("Softmax"); got != Identity() {
		t.Errorf("unknown code parsed to %+v, want Identity", got)
	}
	if got := ParseCode(""); got != Identity() {
		t.Errorf("empty code parsed to %+v, want Identity", got)
	}
	got := ParseCode("LeakyReLU")
	if got.Name() != "Leaky ReLU" || got.Alpha() != 0 {
		t.Errorf("bare LeakyReLU parsed to %+v, want alpha 0", got)
	}
}

// TestAlpha verifies the parameter accessor.
func TestAlpha(t *testing.T) {
	if got := LeakyReLU(0.05).Alpha(); got != 0.05 {
		t.Errorf("Alpha() = %g, want 0.05", got)
	}
	if got := Sigmoid().Alpha(); got != 0 {
		t.Errorf("Sigmoid Alpha() = %g, want 0", got)
	}
}
