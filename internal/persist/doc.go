// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package persist implements the line-oriented text format for network
// weight files.
//
// A weight file holds three tagged header lines followed by one block of
// space-separated rows per weight matrix, each block closed by a "---"
// separator line:
//
//	learning_rate: 0.01
//	activations: Identity; Sigmoid; LeakyReLU_0.05;
//	layers: 2, 16, 1
//	0.5 -0.25
//	...
//	---
//	...
//	---
//
// The format is position-free for the header lines but the weight blocks
// appear in layer order. Matrix rows are written row-major and rebuilt
// through a row-to-column transpose into the column-major buffer the
// matrix constructor expects; both directions must agree or every loaded
// matrix comes back transposed.
package persist
