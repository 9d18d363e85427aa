// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the public API for the scalar activation
// functions understood by the perceptron engine.
//
// Functions are immutable values: ReLU() == ReLU(), and copying one is
// free. Identity is reserved for the input stage; the remaining variants
// may be assigned to any weighted stage.
//
// Example:
//
//	act := activation.LeakyReLU(0.05)
//	y := act.Activate(-2.0) // -0.1
//	code := act.Code()      // "LeakyReLU_0.05"
package activation

import (
	"github.com/born-ml/perceptron/internal/activation"
)

// Function is one of the supported scalar activation functions.
type Function = activation.Function

// Identity returns the pass-through activation bound to the input stage.
func Identity() Function { return activation.Identity() }

// Sigmoid returns the logistic activation: σ(x) = 1 / (1 + exp(-x)).
func Sigmoid() Function { return activation.Sigmoid() }

// ReLU returns the rectified linear activation: f(x) = max(0, x).
func ReLU() Function { return activation.ReLU() }

// LeakyReLU returns a rectified linear activation with slope alpha for
// negative inputs.
func LeakyReLU(alpha float64) Function { return activation.LeakyReLU(alpha) }

// Tanh returns the hyperbolic tangent activation.
func Tanh() Function { return activation.Tanh() }

// Softplus returns the smooth rectifier: f(x) = ln(1 + exp(x)).
func Softplus() Function { return activation.Softplus() }

// Swish returns the self-gated activation: f(x) = x · σ(x).
func Swish() Function { return activation.Swish() }

// Linear returns the pass-through activation for output stages.
func Linear() Function { return activation.Linear() }

// ParseCode maps a weight-file token back to a Function. Unrecognized
// codes degrade to Identity.
func ParseCode(code string) Function { return activation.ParseCode(code) }
