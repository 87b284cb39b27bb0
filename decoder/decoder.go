// Package decoder turns a complete edge labelling into its hidden message:
// the weights along the shortest path between two vertices, each read as a
// letter.
package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/edgeweight/core"
	"github.com/katalvlaran/edgeweight/dijkstra"
)

// DefaultAlphabet maps weight 1 to 'A' through weight 26 to 'Z'.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrNoPath indicates that source and target are not connected.
	ErrNoPath = errors.New("decoder: no path between endpoints")

	// ErrSymbolRange indicates a weight on the path with no letter in the alphabet.
	ErrSymbolRange = errors.New("decoder: weight outside alphabet")

	// ErrWeightCount indicates that the labelling does not cover every edge.
	ErrWeightCount = errors.New("decoder: weight count does not match edge count")

	// ErrEmptyAlphabet indicates WithAlphabet("").
	ErrEmptyAlphabet = errors.New("decoder: alphabet is empty")
)

// Message is a decoded path.
type Message struct {
	Vertices []int  // source .. target
	Edges    []int  // edge ids along the path
	Weights  []int  // weight of each edge on the path
	Cost     int    // sum of Weights
	Text     string // one symbol per edge
}

// Options configures Decode.
type Options struct {
	Alphabet []rune
	err      error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the A..Z alphabet.
func DefaultOptions() Options { return Options{Alphabet: []rune(DefaultAlphabet)} }

// WithAlphabet replaces the symbol table; weight w maps to alphabet[w-1].
func WithAlphabet(alphabet string) Option {
	return func(o *Options) {
		if alphabet == "" {
			o.err = ErrEmptyAlphabet
			return
		}
		o.Alphabet = []rune(alphabet)
	}
}

// Decode finds the shortest path from source to target under weights
// (ties broken toward the lexicographically smallest vertex sequence) and
// spells its weights. It does not modify its inputs, and equal inputs always
// give equal messages.
func Decode(g *core.Graph, weights []int, source, target int, opts ...Option) (*Message, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	if len(weights) != g.EdgeCount() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWeightCount, len(weights), g.EdgeCount())
	}

	w64 := make([]int64, len(weights))
	for i, w := range weights {
		w64[i] = int64(w)
	}
	p, err := dijkstra.ShortestPath(g, w64, source, target)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return nil, fmt.Errorf("%w: %d -> %d: %w", ErrNoPath, source, target, err)
		}
		return nil, err
	}

	msg := &Message{
		Vertices: p.Vertices,
		Edges:    p.Edges,
		Weights:  make([]int, len(p.Edges)),
		Cost:     int(p.Cost),
	}
	var sb strings.Builder
	for i, id := range p.Edges {
		w := weights[id]
		if w < 1 || w > len(o.Alphabet) {
			return nil, fmt.Errorf("%w: edge %d weight %d, alphabet has %d symbols",
				ErrSymbolRange, id, w, len(o.Alphabet))
		}
		msg.Weights[i] = w
		sb.WriteRune(o.Alphabet[w-1])
	}
	msg.Text = sb.String()

	return msg, nil
}
