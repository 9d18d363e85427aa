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
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/perceptron/internal/activation"
)

// Load reads and decodes the weight file at path.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist: open weight file %q", path)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a weight file from r.
//
// Header lines are matched by tag prefix. A learning rate that is zero or
// negative is ignored rather than rejected, and unrecognized activation
// codes map to Identity; both are deliberate permissiveness toward files
// written by other engine versions. A non-numeric weight token or an
// empty block at a layer separator is fatal. When the topology line is
// present the decoded matrices are checked against it; files without one
// get their topology derived from the matrix shapes.
func Decode(r io.Reader) (*Model, error) {
	m := &Model{}
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == LayerSeparator:
			if len(rows) == 0 {
				return nil, errors.Wrapf(ErrEmptyLayerBlock, "persist: line %d", lineNo)
			}
			w, err := layerFromRows(rows)
			if err != nil {
				return nil, errors.Wrapf(err, "persist: layer %d ending at line %d", len(m.Weights), lineNo)
			}
			m.Weights = append(m.Weights, w)
			rows = nil
		case strings.HasPrefix(line, LearningTag):
			v, err := strconv.ParseFloat(strings.TrimSpace(line[len(LearningTag):]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "persist: bad learning rate on line %d", lineNo)
			}
			if v > 0 {
				m.LearningRate = v
			}
		case strings.HasPrefix(line, ActivationTag):
			for _, code := range strings.Split(line[len(ActivationTag):], ";") {
				code = strings.TrimSpace(code)
				if code == "" {
					continue
				}
				m.Activations = append(m.Activations, activation.ParseCode(code))
			}
		case strings.HasPrefix(line, TopologyTag):
			for _, tok := range strings.Split(line[len(TopologyTag):], ",") {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				size, err := strconv.Atoi(tok)
				if err != nil {
					return nil, errors.Wrapf(err, "persist: bad layer size %q on line %d", tok, lineNo)
				}
				m.Sizes = append(m.Sizes, size)
			}
		default:
			toks := strings.Fields(line)
			row := make([]float64, len(toks))
			for i, tok := range toks {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "persist: bad weight value %q on line %d", tok, lineNo)
				}
				row[i] = v
			}
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "persist: read weight file")
	}
	if len(rows) != 0 {
		return nil, errors.Errorf("persist: %d weight rows after the last layer separator", len(rows))
	}
	if len(m.Weights) == 0 {
		return nil, ErrNoLayers
	}
	if err := m.checkTopology(); err != nil {
		return nil, err
	}
	return m, nil
}

// layerFromRows rebuilds one weight matrix from its parsed rows. The
// rows are row-major; the matrix backing is column-major, so the block
// goes through Transpose before it is flattened.
func layerFromRows(rows [][]float64) (*mat.Dense, error) {
	r, c := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, errors.Errorf("row %d has %d values, want %d", i, len(row), c)
		}
	}
	colMajor := make([]float64, 0, r*c)
	for _, col := range Transpose(rows) {
		colMajor = append(colMajor, col...)
	}
	w := mat.NewDense(r, c, nil)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			w.Set(i, j, colMajor[j*r+i])
		}
	}
	return w, nil
}

// checkTopology validates the decoded matrices against the topology
// line, or derives the topology when the file predates that header.
func (m *Model) checkTopology() error {
	if len(m.Sizes) == 0 {
		m.Sizes = make([]int, 0, len(m.Weights)+1)
		_, c := m.Weights[0].Dims()
		m.Sizes = append(m.Sizes, c)
		for i, w := range m.Weights {
			r, c := w.Dims()
			if c != m.Sizes[i] {
				return errors.Wrapf(ErrShapeMismatch, "layer %d is %dx%d but the previous layer has %d neurons", i, r, c, m.Sizes[i])
			}
			m.Sizes = append(m.Sizes, r)
		}
		return nil
	}
	if len(m.Weights) != len(m.Sizes)-1 {
		return errors.Wrapf(ErrShapeMismatch, "%d weight layers for %d layer sizes", len(m.Weights), len(m.Sizes))
	}
	for i, w := range m.Weights {
		r, c := w.Dims()
		if r != m.Sizes[i+1] || c != m.Sizes[i] {
			return errors.Wrapf(ErrShapeMismatch, "layer %d is %dx%d, want %dx%d", i, r, c, m.Sizes[i+1], m.Sizes[i])
		}
	}
	return nil
}
