package life

import "testing"

func neighborsWithAlive(n int) Neighbors {
	var out Neighbors
	for i := range out {
		out[i] = NeighborDead
		if i < n {
			out[i] = NeighborAlive
		}
	}
	return out
}

func TestIsAliveRuleTable(t *testing.T) {
	cases := []struct {
		current bool
		alive   int
		want    bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
	}
	for _, tc := range cases {
		if got := IsAlive(tc.current, neighborsWithAlive(tc.alive)); got != tc.want {
			t.Fatalf("IsAlive(%v, %d alive) = %v, expected %v", tc.current, tc.alive, got, tc.want)
		}
	}
}

func TestIsAliveIgnoresAbsentNeighbors(t *testing.T) {
	n := Neighbors{NeighborAlive, NeighborAlive, NeighborAlive}
	if !IsAlive(false, n) {
		t.Fatal("three live neighbors among absent slots should give birth")
	}
	if IsAlive(true, Neighbors{NeighborAlive}) {
		t.Fatal("one live neighbor with absent slots should not survive")
	}
}

func TestNeighborCoordsOrder(t *testing.T) {
	got := NeighborCoords(5, 7)
	want := [8]NeighborCoord{
		{4, 6, true}, {5, 6, true}, {6, 6, true}, {6, 7, true},
		{6, 8, true}, {5, 8, true}, {4, 8, true}, {4, 7, true},
	}
	if got != want {
		t.Fatalf("NeighborCoords(5,7) = %v, expected %v", got, want)
	}
}

func TestNeighborCoordsOnlyClipsLowerBound(t *testing.T) {
	got := NeighborCoords(0, 0)
	valid := 0
	for _, c := range got {
		if c.Valid {
			valid++
			if c.X < 0 || c.Y < 0 {
				t.Fatalf("valid coordinate %v is negative", c)
			}
		}
	}
	if valid != 3 {
		t.Fatalf("origin has %d valid neighbors, expected 3", valid)
	}
	// Upper bounds depend on the board and are not checked here.
	for _, c := range NeighborCoords(1<<20, 1<<20) {
		if !c.Valid {
			t.Fatalf("coordinate %v should be valid without a board size", c)
		}
	}
}
