package game

import "math/rand"

type carveStep struct {
	cell int
	dir  Direction
}

// Carve turns a fully walled grid into a perfect maze using randomized
// depth-first backtracking with an explicit stack. Every iteration either
// visits a fresh cell or pops the stack, and the stack grows exactly once
// per visited cell, so the loop always terminates. The open-wall graph that
// comes out is a spanning tree: connected, acyclic, CellCount()-1 open
// wall pairs.
func Carve(grid *Grid, rng *rand.Rand) {
	var stack []int
	current := 0
	grid.Cells[current].visited = true
	visited := 1

	for visited < grid.CellCount() {
		steps := unvisitedNeighbors(grid, current)
		if len(steps) > 0 {
			next := steps[rng.Intn(len(steps))]
			grid.OpenWall(current, next.cell, next.dir)
			stack = append(stack, current)
			current = next.cell
			grid.Cells[current].visited = true
			visited++
		} else {
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}
}

// unvisitedNeighbors builds a fresh list every step; capacity is at most
// the four compass directions.
func unvisitedNeighbors(grid *Grid, cell int) []carveStep {
	steps := make([]carveStep, 0, 4)
	for _, dir := range AllDirections {
		if next, ok := grid.Neighbor(cell, dir); ok && !grid.Cells[next].visited {
			steps = append(steps, carveStep{cell: next, dir: dir})
		}
	}
	return steps
}
