// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation implements the closed set of scalar nonlinearities
// used by the perceptron engine.
//
// A Function is an immutable value: copying one is free and two values
// with the same variant and parameter are interchangeable. The engine
// evaluates Derivative on already-activated values, not pre-activation
// sums; saved weight files depend on that convention (see mlp.Train).
package activation

import (
	"math"
	"strconv"
	"strings"
)

type kind uint8

const (
	identity kind = iota
	sigmoid
	relu
	leakyReLU
	tanh
	softplus
	swish
	linear
)

// Function is one of the supported scalar activation functions.
//
// The zero value is Identity, the variant reserved for the input stage.
type Function struct {
	kind  kind
	alpha float64
}

// Identity returns the pass-through activation bound to the input stage.
func Identity() Function { return Function{kind: identity} }

// Sigmoid returns the logistic activation: σ(x) = 1 / (1 + exp(-x)).
func Sigmoid() Function { return Function{kind: sigmoid} }

// ReLU returns the rectified linear activation: f(x) = max(0, x).
func ReLU() Function { return Function{kind: relu} }

// LeakyReLU returns a rectified linear activation with slope alpha for
// negative inputs.
func LeakyReLU(alpha float64) Function { return Function{kind: leakyReLU, alpha: alpha} }

// Tanh returns the hyperbolic tangent activation.
func Tanh() Function { return Function{kind: tanh} }

// Softplus returns the smooth rectifier: f(x) = ln(1 + exp(x)).
func Softplus() Function { return Function{kind: softplus} }

// Swish returns the self-gated activation: f(x) = x · σ(x).
func Swish() Function { return Function{kind: swish} }

// Linear returns the pass-through activation for output stages.
func Linear() Function { return Function{kind: linear} }

// Activate computes the activation value at x.
func (f Function) Activate(x float64) float64 {
	switch f.kind {
	case sigmoid:
		return 1.0 / (1.0 + math.Exp(-x))
	case relu:
		return math.Max(0, x)
	case leakyReLU:
		if x > 0 {
			return x
		}
		return f.alpha * x
	case tanh:
		return math.Tanh(x)
	case softplus:
		return math.Log(1.0 + math.Exp(x))
	case swish:
		return x / (1.0 + math.Exp(-x))
	default: // identity, linear
		return x
	}
}

// Derivative computes the derivative of the activation at x.
func (f Function) Derivative(x float64) float64 {
	switch f.kind {
	case sigmoid:
		s := f.Activate(x)
		return s * (1.0 - s)
	case relu:
		if x > 0 {
			return 1.0
		}
		return 0.0
	case leakyReLU:
		if x > 0 {
			return 1.0
		}
		return f.alpha
	case tanh:
		t := math.Tanh(x)
		return 1.0 - t*t
	case softplus:
		return 1.0 / (1.0 + math.Exp(-x))
	case swish:
		s := 1.0 / (1.0 + math.Exp(-x))
		return s + x*s*(1.0-s)
	default: // identity, linear
		return 1.0
	}
}

// Alpha returns the negative-side slope for LeakyReLU, 0 otherwise.
func (f Function) Alpha() float64 {
	if f.kind == leakyReLU {
		return f.alpha
	}
	return 0.0
}

// Name returns the human-readable name of the variant.
func (f Function) Name() string {
	switch f.kind {
	case sigmoid:
		return "Sigmoid"
	case relu:
		return "ReLU"
	case leakyReLU:
		return "Leaky ReLU"
	case tanh:
		return "Tanh"
	case softplus:
		return "Softplus"
	case swish:
		return "Swish"
	case linear:
		return "Linear"
	default:
		return "Identity"
	}
}

// Code returns the stable token used in the weight-file format.
// LeakyReLU carries its slope in the token, e.g. "LeakyReLU_0.05".
func (f Function) Code() string {
	if f.kind == leakyReLU {
		return "LeakyReLU_" + strconv.FormatFloat(f.alpha, 'g', -1, 64)
	}
	switch f.kind {
	case sigmoid:
		return "Sigmoid"
	case relu:
		return "ReLU"
	case tanh:
		return "Tanh"
	case softplus:
		return "Softplus"
	case swish:
		return "Swish"
	case linear:
		return "Linear"
	default:
		return "Identity"
	}
}

// ParseCode maps a weight-file token back to a Function.
//
// Unrecognized codes degrade to Identity rather than failing; old files
// written by newer engines stay loadable. A LeakyReLU token without a
// parseable slope suffix loads with alpha 0.
func ParseCode(code string) Function {
	base, suffix, _ := strings.Cut(code, "_")
	switch base {
	case "Identity":
		return Identity()
	case "Sigmoid":
		return Sigmoid()
	case "ReLU":
		return ReLU()
	case "LeakyReLU":
		alpha, err := strconv.ParseFloat(suffix, 64)
		if err != nil {
			alpha = 0.0
		}
		return LeakyReLU(alpha)
	case "Tanh":
		return Tanh()
	case "Softplus":
		return Softplus()
	case "Swish":
		return Swish()
	case "Linear":
		return Linear()
	default:
		return Identity()
	}
}
