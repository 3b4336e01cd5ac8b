// Command mapgen-demo is a minimal harness for exercising the three map
// generators from the terminal: it seeds an RNG, runs the requested
// generator, and prints the resulting grid's raw tile encoding.
//
// Flag parsing mirrors the teacher's own main.go idiom (flag.Int,
// flag.Bool, flag.Parse) rather than a third-party CLI framework, since
// the teacher reaches for nothing heavier than the standard library for
// its own entry point.
package main

import (
	"flag"
	"fmt"
	"log"

	"roguemap/pkg/engine/grid"
	"roguemap/pkg/engine/rng"
	"roguemap/pkg/mapgen/automata"
	"roguemap/pkg/mapgen/bspgen"
	"roguemap/pkg/mapgen/maze"
)

func main() {
	seed := flag.Int64("seed", 1, "RNG seed")
	width := flag.Int("w", 80, "grid width")
	height := flag.Int("h", 25, "grid height")
	kind := flag.String("gen", "bsp", "generator to run: bsp, automata, or maze")
	flag.Parse()

	r := rng.NewRNG(*seed)

	g, err := generate(*kind, *width, *height, r)
	if err != nil {
		log.Fatalf("mapgen-demo: %v", err)
	}

	fmt.Print(g.String())
}

func generate(kind string, w, h int, r *rng.RNG) (*grid.Grid, error) {
	switch kind {
	case "bsp":
		return bspgen.Generate(w, h, bspgen.DefaultConfig(), r)
	case "automata":
		return automata.Generate(w, h, automata.DefaultConfig(), r)
	case "maze":
		return maze.Generate(w, h, maze.DefaultConfig(), r)
	default:
		return nil, fmt.Errorf("mapgen-demo: unknown generator %q (want bsp, automata, or maze)", kind)
	}
}
