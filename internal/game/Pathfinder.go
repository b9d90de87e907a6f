package game

import "errors"

// ErrPathNotFound means breadth-first search could not reach the target.
// On a freshly carved maze exactly one simple path exists between any two
// cells, so hitting this error signals a corrupted grid; callers must abort
// the level load instead of racing an agent that can never arrive.
var ErrPathNotFound = errors.New("no path between cells")

// ComputePath runs a breadth-first search over the open-wall graph and
// returns the shortest path from start to target, both endpoints included.
func ComputePath(grid *Grid, start, target int) ([]int, error) {
	n := grid.CellCount()
	visited := make([]bool, n)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == target {
			var path []int
			for current != -1 {
				path = append(path, current)
				current = parent[current]
			}
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, nil
		}

		for _, dir := range AllDirections {
			if grid.HasWall(current, dir) {
				continue
			}
			next, ok := grid.Neighbor(current, dir)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = current
			queue = append(queue, next)
		}
	}

	return nil, ErrPathNotFound
}
