// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
	"github.com/born-ml/perceptron/internal/persist"
)

// LayerSpec declares one network stage: its neuron count and the
// activation applied to the values entering that stage. The first spec
// describes the input stage; its activation is never applied and is
// replaced with Identity at construction.
type LayerSpec struct {
	Neurons    int
	Activation activation.Function
}

// Pair is a single training example: an input vector sized to the input
// stage and a target vector sized to the output stage.
type Pair struct {
	Input  []float64
	Target []float64
}

// Network is a feed-forward multilayer perceptron: dense weight matrices
// between adjacent stages, one activation assignment per stage, and a
// learning rate for online backpropagation.
//
// weights[i] connects stage i to stage i+1 and has sizes[i+1] rows by
// sizes[i] columns. The activation list either has one entry per stage
// (index 0 reserved for the input's Identity) or exactly one entry that
// applies uniformly to every weighted stage.
//
// A Network performs no internal locking; it runs each operation to
// completion on the calling goroutine and may be shared behind an
// external sync.RWMutex by hosts that interleave reads with training.
type Network struct {
	weights []*mat.Dense
	acts    []activation.Function
	rate    float64
	sizes   []int
}

// New builds a randomly initialized network from per-stage layer specs.
// At least two specs are required. Weight entries are drawn uniformly
// from [-1, 1).
//
// Example:
//
//	net, err := mlp.New([]mlp.LayerSpec{
//	    {Neurons: 2},
//	    {Neurons: 16, Activation: activation.Sigmoid()},
//	    {Neurons: 1, Activation: activation.Sigmoid()},
//	}, 0.01)
func New(specs []LayerSpec, rate float64) (*Network, error) {
	if len(specs) < 2 {
		return nil, errors.Errorf("mlp: a network needs at least 2 layers, got %d", len(specs))
	}
	sizes := make([]int, len(specs))
	acts := make([]activation.Function, len(specs))
	for i, s := range specs {
		if s.Neurons < 1 {
			return nil, errors.Errorf("mlp: layer %d declares %d neurons", i, s.Neurons)
		}
		sizes[i] = s.Neurons
		acts[i] = s.Activation
	}
	acts[0] = activation.Identity() // the input stage is never activated
	return &Network{
		weights: randomWeights(sizes),
		acts:    acts,
		rate:    rate,
		sizes:   sizes,
	}, nil
}

// NewUniform builds a randomly initialized network whose every weighted
// stage uses the same activation. The single-entry activation list is a
// distinct representation and survives save/load as such.
func NewUniform(sizes []int, rate float64, act activation.Function) (*Network, error) {
	if len(sizes) < 2 {
		return nil, errors.Errorf("mlp: a network needs at least 2 layers, got %d", len(sizes))
	}
	for i, s := range sizes {
		if s < 1 {
			return nil, errors.Errorf("mlp: layer %d declares %d neurons", i, s)
		}
	}
	return &Network{
		weights: randomWeights(sizes),
		acts:    []activation.Function{act},
		rate:    rate,
		sizes:   append([]int(nil), sizes...),
	}, nil
}

func randomWeights(sizes []int) []*mat.Dense {
	weights := make([]*mat.Dense, len(sizes)-1)
	for i := range weights {
		rows, cols := sizes[i+1], sizes[i]
		data := make([]float64, rows*cols)
		for j := range data {
			data[j] = rand.Float64()*2 - 1 //nolint:gosec // G404: statistical init, not crypto
		}
		weights[i] = mat.NewDense(rows, cols, data)
	}
	return weights
}

// Load reconstructs a network from the weight file at path.
//
// Files without an activation header load with a single Identity
// assignment; files whose activation count differs from the stage count
// keep the permissive cyclic mapping for compatibility.
func Load(path string) (*Network, error) {
	m, err := persist.Load(path)
	if err != nil {
		return nil, err
	}
	acts := m.Activations
	if len(acts) == 0 {
		acts = []activation.Function{activation.Identity()}
	}
	return &Network{
		weights: m.Weights,
		acts:    acts,
		rate:    m.LearningRate,
		sizes:   m.Sizes,
	}, nil
}

// Save writes the full network state to the weight file at path.
func (n *Network) Save(path string) error {
	return persist.Save(path, n.model())
}

func (n *Network) model() *persist.Model {
	return &persist.Model{
		LearningRate: n.rate,
		Activations:  append([]activation.Function(nil), n.acts...),
		Sizes:        append([]int(nil), n.sizes...),
		Weights:      n.weights,
	}
}

// Sizes returns the neuron count per stage, input through output.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// LearningRate returns the rate applied by Train.
func (n *Network) LearningRate() float64 {
	return n.rate
}

// ActivationName returns the name of the activation assigned to the
// given stage under the cyclic index rule, or "" for an invalid stage.
func (n *Network) ActivationName(stage int) string {
	if stage < 0 || stage >= len(n.sizes) {
		return ""
	}
	return n.acts[n.actIndex(stage)].Name()
}

// ActivationCodes returns the serialization tokens of the activation
// list in declaration order.
func (n *Network) ActivationCodes() []string {
	codes := make([]string, len(n.acts))
	for i, a := range n.acts {
		codes[i] = a.Code()
	}
	return codes
}

// Weights returns a snapshot of every weight matrix as layers → rows →
// values. Mutating the snapshot does not affect the network.
func (n *Network) Weights() [][][]float64 {
	layers := make([][][]float64, len(n.weights))
	for i, w := range n.weights {
		r, _ := w.Dims()
		rows := make([][]float64, r)
		for j := 0; j < r; j++ {
			rows[j] = append([]float64(nil), w.RawRowView(j)...)
		}
		layers[i] = rows
	}
	return layers
}

// String renders the weight matrices for console inspection.
func (n *Network) String() string {
	var b strings.Builder
	b.WriteString("MLP network weights\n")
	for i, w := range n.weights {
		fmt.Fprintf(&b, "\nconnections stage [%d] - [%d]\n", i, i+1)
		r, c := w.Dims()
		for row := 0; row < r; row++ {
			for col := 0; col < c; col++ {
				if col > 0 {
					b.WriteByte('\t')
				}
				b.WriteString(strconv.FormatFloat(w.At(row, col), 'g', -1, 64))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
