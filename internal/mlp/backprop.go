// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Train runs one online training step: a forward pass over input with
// every stage retained, then backpropagation against target with
// in-place weight updates. No loss value is computed.
//
// Activation derivatives are evaluated on the already-activated stage
// values, not the pre-activation sums. That is exact only for Sigmoid;
// existing weight files were trained under this convention and changing
// it would alter what every loaded network learns.
func (n *Network) Train(input, target []float64) error {
	if len(input) != n.sizes[0] {
		return errors.Errorf("mlp: input has %d values, the input stage has %d neurons", len(input), n.sizes[0])
	}
	if last := n.sizes[len(n.sizes)-1]; len(target) != last {
		return errors.Errorf("mlp: target has %d values, the output stage has %d neurons", len(target), last)
	}
	n.backprop(n.forward(input), target)
	return nil
}

// backprop walks the weight matrices from last to first, applying
// rate·(delta ⊗ stage input) to each and propagating the error through
// the transpose. The transpose multiply sees the freshly updated
// weights, matching the reference behavior for saved networks.
func (n *Network) backprop(stages []*mat.VecDense, target []float64) {
	last := stages[len(stages)-1]
	errVec := mat.NewVecDense(last.Len(), nil)
	errVec.SubVec(mat.NewVecDense(len(target), target), last)
	delta := n.deltaFor(errVec, last, n.actIndex(len(stages)-1))

	for i := len(n.weights) - 1; i >= 0; i-- {
		w := n.weights[i]
		var grad mat.Dense
		grad.Outer(n.rate, delta, stages[i])
		w.Add(w, &grad)

		if i > 0 {
			_, cols := w.Dims()
			back := mat.NewVecDense(cols, nil)
			back.MulVec(w.T(), delta)
			delta = n.deltaFor(back, stages[i], n.actIndex(i))
		}
	}
}

// deltaFor computes error ⊙ derivative(stage) with the activation at the
// given cyclic index.
func (n *Network) deltaFor(errVec, stage *mat.VecDense, idx int) *mat.VecDense {
	act := n.acts[idx]
	d := mat.NewVecDense(stage.Len(), nil)
	for j := 0; j < stage.Len(); j++ {
		d.SetVec(j, errVec.AtVec(j)*act.Derivative(stage.AtVec(j)))
	}
	return d
}
