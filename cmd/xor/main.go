// Package main demonstrates the perceptron engine on the XNOR problem:
// it trains a fresh [2, 16, 1] Sigmoid network (or reloads a saved one),
// prints the weight dump, and evaluates every training pair.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/born-ml/perceptron/activation"
	"github.com/born-ml/perceptron/mlp"
)

// netHolder memoizes the trained network behind a reader-writer guard so
// concurrent readers can query while one writer trains or replaces it.
// The engine itself does no locking; arbitration is the host's job.
type netHolder struct {
	mu  sync.RWMutex
	net *mlp.Network
}

func (h *netHolder) get() *mlp.Network {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.net
}

func (h *netHolder) set(n *mlp.Network) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.net = n
}

func main() {
	train := flag.Bool("train", false, "train a fresh network instead of loading the weight file")
	epochs := flag.Int("epochs", 1000000, "training epochs over the full dataset")
	file := flag.String("file", "network.txt", "weight file path")
	flag.Parse()

	pairs := []mlp.Pair{
		{Input: []float64{0, 1}, Target: []float64{0}},
		{Input: []float64{1, 0}, Target: []float64{0}},
		{Input: []float64{1, 1}, Target: []float64{1}},
		{Input: []float64{0, 0}, Target: []float64{1}},
	}

	var holder netHolder
	if *train {
		fmt.Println("[*] training a fresh network")
		net, err := mlp.New([]mlp.LayerSpec{
			{Neurons: 2},
			{Neurons: 16, Activation: activation.Sigmoid()},
			{Neurons: 1, Activation: activation.Sigmoid()},
		}, 0.01)
		if err != nil {
			fatal(err)
		}
		holder.set(net)

		fmt.Println("[+] before training ----------")
		fmt.Println(net)
		for i := 0; i < *epochs; i++ {
			for _, p := range pairs {
				if err := net.Train(p.Input, p.Target); err != nil {
					fatal(err)
				}
			}
		}
		fmt.Println("[-] after training -----------")
	} else {
		fmt.Printf("[*] loading network from %s\n", *file)
		net, err := mlp.Load(*file)
		if err != nil {
			fatal(err)
		}
		holder.set(net)
	}

	net := holder.get()
	fmt.Println(net)

	fmt.Println("[!] evaluation ---------------")
	for _, p := range pairs {
		out, err := net.Infer(p.Input)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("input: %v, expected: %v, output: %v, squared error: %g\n",
			p.Input, p.Target, out, mlp.SquaredError(p.Target, out))
	}

	if *train {
		if err := net.Save(*file); err != nil {
			fatal(err)
		}
		fmt.Printf("[*] saved weights to %s\n", *file)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
