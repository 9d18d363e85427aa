// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package persist

import "errors"

// Common errors.
var (
	ErrEmptyLayerBlock = errors.New("empty weight block before layer separator")
	ErrNoLayers        = errors.New("no weight layers in file")
	ErrShapeMismatch   = errors.New("weight matrix shape does not match topology")
)
