// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mlp provides the public API for the feed-forward multilayer
// perceptron engine: network construction, inference, online
// backpropagation training, and weight-file persistence.
//
// Example:
//
//	net, err := mlp.New([]mlp.LayerSpec{
//	    {Neurons: 2},
//	    {Neurons: 16, Activation: activation.Sigmoid()},
//	    {Neurons: 1, Activation: activation.Sigmoid()},
//	}, 0.01)
//	if err != nil {
//	    return err
//	}
//	for i := 0; i < 100000; i++ {
//	    for _, p := range pairs {
//	        if err := net.Train(p.Input, p.Target); err != nil {
//	            return err
//	        }
//	    }
//	}
//	out, err := net.Infer([]float64{1, 1})
//
// A Network is not internally synchronized; hosts that share one across
// goroutines guard it with a sync.RWMutex, taking the write lock around
// Train and the read lock around Infer and Save.
package mlp

import (
	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/mlp"
)

// Network is a feed-forward multilayer perceptron.
type Network = mlp.Network

// LayerSpec declares one network stage: neuron count plus the activation
// applied to values entering that stage.
type LayerSpec = mlp.LayerSpec

// Pair is a single training example: input and target vectors sized to
// the network's input and output stages.
type Pair = mlp.Pair

// New builds a randomly initialized network from per-stage layer specs.
// The first spec's activation is replaced with Identity; it is never
// applied to inputs.
func New(specs []LayerSpec, rate float64) (*Network, error) {
	return mlp.New(specs, rate)
}

// NewUniform builds a randomly initialized network whose every weighted
// stage uses the same activation.
func NewUniform(sizes []int, rate float64, act activation.Function) (*Network, error) {
	return mlp.NewUniform(sizes, rate, act)
}

// Load reconstructs a network from the weight file at path.
func Load(path string) (*Network, error) {
	return mlp.Load(path)
}

// SquaredError returns Σ(target − output)².
func SquaredError(target, output []float64) float64 {
	return mlp.SquaredError(target, output)
}
