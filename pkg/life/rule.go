package life

// NeighborCoord is the position of one adjacent cell. Valid is false when
// either component would be negative.
type NeighborCoord struct {
	X, Y  int
	Valid bool
}

// Neighbor order is NW, N, NE, E, SE, S, SW, W.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0},
	{1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// NeighborCoords returns the eight positions surrounding (x, y) in the order
// NW, N, NE, E, SE, S, SW, W. Only the lower bound is checked; positions past
// the far edge of a board are left for the caller to discard.
func NeighborCoords(x, y int) [8]NeighborCoord {
	var out [8]NeighborCoord
	for i, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		out[i] = NeighborCoord{X: nx, Y: ny, Valid: nx >= 0 && ny >= 0}
	}
	return out
}

// Neighbor is the state of one adjacent cell as seen from a board.
type Neighbor uint8

const (
	// NeighborAbsent marks a position that lies off the board.
	NeighborAbsent Neighbor = iota
	NeighborDead
	NeighborAlive
)

// NeighborOf converts a cell value into a present neighbor.
func NeighborOf(alive bool) Neighbor {
	if alive {
		return NeighborAlive
	}
	return NeighborDead
}

// Neighbors holds the eight surrounding cells in NeighborCoords order.
type Neighbors [8]Neighbor

// Present returns how many neighbors lie on the board.
func (n Neighbors) Present() int {
	count := 0
	for _, v := range n {
		if v != NeighborAbsent {
			count++
		}
	}
	return count
}

// AliveCount returns how many neighbors are alive.
func (n Neighbors) AliveCount() int {
	count := 0
	for _, v := range n {
		if v == NeighborAlive {
			count++
		}
	}
	return count
}

// IsAlive applies Conway's rule: a live cell survives with two or three live
// neighbors and a dead cell is born with exactly three.
func IsAlive(current bool, n Neighbors) bool {
	alive := n.AliveCount()
	if current {
		return alive == 2 || alive == 3
	}
	return alive == 3
}
