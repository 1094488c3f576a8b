package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Puzzles []*Puzzle `hcl:"puzzle,block"`
}

// Puzzle is the HCL schema for a `puzzle "<name>" { ... }` block.
type Puzzle struct {
	Name   string         `hcl:"name,label"`
	Input  hcl.Expression `hcl:"input"`
	Solver hcl.Expression `hcl:"solver,optional"`
	// Remain carries the nested `expect` block, decoded by hand so that a
	// duplicate block gets a precise diagnostic.
	Remain hcl.Body `hcl:",remain"`
}

var puzzleBodySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "expect"},
	},
}

var expectAttributes = map[string]struct{}{
	"part1": {},
	"part2": {},
}
