// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package mlp

import "gonum.org/v1/gonum/floats"

// SquaredError returns Σ(target − output)². Both slices must have the
// same length.
func SquaredError(target, output []float64) float64 {
	diff := make([]float64, len(target))
	floats.SubTo(diff, target, output)
	return floats.Dot(diff, diff)
}
