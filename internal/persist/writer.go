// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package persist

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Save encodes m into the weight file at path, creating or truncating it.
func Save(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "persist: create weight file %q", path)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "persist: close weight file %q", path)
}

// Encode writes m to w in the weight-file format. Encode is the exact
// inverse of Decode: encoding a decoded model reproduces the original
// file byte for byte.
func Encode(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(LearningTag)
	bw.WriteByte(' ')
	bw.WriteString(formatFloat(m.LearningRate))
	bw.WriteByte('\n')

	bw.WriteString(ActivationTag)
	for _, a := range m.Activations {
		bw.WriteByte(' ')
		bw.WriteString(a.Code())
		bw.WriteByte(';')
	}
	bw.WriteByte('\n')

	bw.WriteString(TopologyTag)
	bw.WriteByte(' ')
	sizes := make([]string, len(m.Sizes))
	for i, s := range m.Sizes {
		sizes[i] = strconv.Itoa(s)
	}
	bw.WriteString(strings.Join(sizes, ", "))
	bw.WriteByte('\n')

	for _, layer := range m.Weights {
		r, c := layer.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if j > 0 {
					bw.WriteByte(' ')
				}
				bw.WriteString(formatFloat(layer.At(i, j)))
			}
			bw.WriteByte('\n')
		}
		bw.WriteString(LayerSeparator)
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "persist: write weight file")
}
