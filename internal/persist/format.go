// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package persist

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
)

// Format constants. Changing any of them breaks compatibility with
// previously saved weight files.
const (
	LearningTag    = "learning_rate:"
	ActivationTag  = "activations:"
	TopologyTag    = "layers:"
	LayerSeparator = "---"
)

// Model is the decoded content of a weight file, independent of the
// network type that consumes it.
type Model struct {
	LearningRate float64 // 0 when the file carried no strictly positive rate
	Activations  []activation.Function
	Sizes        []int // neuron count per stage, input through output
	Weights      []*mat.Dense
}

// formatFloat renders a weight value with the shortest representation
// that parses back to the same float64.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
