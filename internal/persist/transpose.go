// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package persist

// Transpose reshapes a row-major collection of rows into its column
// slices. Transpose(rows)[j][i] == rows[i][j]. An empty input yields nil.
// The input must be rectangular.
func Transpose[T any](rows [][]T) [][]T {
	if len(rows) == 0 {
		return nil
	}
	cols := make([][]T, len(rows[0]))
	for _, row := range rows {
		for j, v := range row {
			cols[j] = append(cols[j], v)
		}
	}
	return cols
}
