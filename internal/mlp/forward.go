// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// actIndex returns the activation-list index used at a stage.
//
// A single-entry list always resolves to index 0. Otherwise index 0 is
// reserved for the input stage's Identity slot: stage 1 uses index 1 and
// each later stage advances by one, wrapping back to 1 (never 0) past
// the end of the list. Lists shorter than the stage count are therefore
// reused cyclically; longer lists leave their tail unreached.
func (n *Network) actIndex(stage int) int {
	if len(n.acts) == 1 || stage == 0 {
		return 0
	}
	return (stage-1)%(len(n.acts)-1) + 1
}

// forward runs forward propagation and returns every stage's activation
// vector, the input at index 0 through the output at index len(weights).
func (n *Network) forward(input []float64) []*mat.VecDense {
	stages := make([]*mat.VecDense, 0, len(n.weights)+1)
	current := mat.NewVecDense(len(input), append([]float64(nil), input...))
	stages = append(stages, current)

	for i, w := range n.weights {
		rows, _ := w.Dims()
		z := mat.NewVecDense(rows, nil)
		z.MulVec(w, current)
		act := n.acts[n.actIndex(i+1)]
		for j := 0; j < rows; j++ {
			z.SetVec(j, act.Activate(z.AtVec(j)))
		}
		current = z
		stages = append(stages, current)
	}
	return stages
}

// Infer runs forward propagation only and returns the output stage's
// activation vector. The input length must match the input stage size.
func (n *Network) Infer(input []float64) ([]float64, error) {
	if len(input) != n.sizes[0] {
		return nil, errors.Errorf("mlp: input has %d values, the input stage has %d neurons", len(input), n.sizes[0])
	}
	stages := n.forward(input)
	last := stages[len(stages)-1]
	out := make([]float64, last.Len())
	copy(out, last.RawVector().Data)
	return out, nil
}
