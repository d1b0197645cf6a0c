package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecialOutcome(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		complex bool
		axis    Axis
		want    Special
		wantDir ClearDir
		created bool
	}{
		{name: "three is plain", size: 3, want: SpecialNone},
		{name: "four makes area bomb", size: 4, want: SpecialAreaBomb, created: true},
		{name: "straight five horizontal", size: 5, axis: AxisHorizontal, want: SpecialLineClear, wantDir: DirHorizontal, created: true},
		{name: "straight five vertical", size: 5, axis: AxisVertical, want: SpecialLineClear, wantDir: DirVertical, created: true},
		{name: "branching five makes bomb not wildcard", size: 5, complex: true, axis: AxisBoth, want: SpecialAreaBomb, created: true},
		{name: "six makes wildcard", size: 6, want: SpecialWildcard, created: true},
		{name: "big complex group still wildcard", size: 8, complex: true, axis: AxisBoth, want: SpecialWildcard, created: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MatchGroup{Type: 1, Axis: tt.axis, Complex: tt.complex}
			for i := 0; i < tt.size; i++ {
				g.Cells = append(g.Cells, C(i, 0))
			}
			special, dir, created := specialOutcome(g)
			require.Equal(t, tt.created, created)
			require.Equal(t, tt.want, special)
			require.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestPlacementTargetPrefersSwappedCellOnFirstStep(t *testing.T) {
	g := MatchGroup{
		Type:  2,
		Cells: []Coord{C(1, 3), C(2, 3), C(3, 3), C(4, 3)},
	}
	swapped := []Coord{C(4, 2), C(4, 3)}

	require.Equal(t, C(4, 3), placementTarget(g, swapped, 1))
}

func TestPlacementTargetUsesCentroidOnDeeperSteps(t *testing.T) {
	g := MatchGroup{
		Type:  2,
		Cells: []Coord{C(1, 3), C(2, 3), C(3, 3), C(4, 3)},
	}
	swapped := []Coord{C(4, 2), C(4, 3)}

	// Centroid x = 2.5; cells at x=2 and x=3 tie, scan order wins.
	got := placementTarget(g, swapped, 2)
	require.Equal(t, C(2, 3), got)
}

func TestPlacementTargetCentroidWhenSwapOutsideGroup(t *testing.T) {
	g := MatchGroup{
		Type:  2,
		Cells: []Coord{C(0, 0), C(1, 0), C(2, 0)},
	}
	swapped := []Coord{C(4, 4), C(4, 3)}

	require.Equal(t, C(1, 0), placementTarget(g, swapped, 1))
}

func TestPlanSpecialsPriorityOnSharedTarget(t *testing.T) {
	// Two groups engineered to share their nearest-centroid slot: the
	// wildcard wins it and the bomb placement is skipped.
	groups := []MatchGroup{
		{Type: 1, Cells: []Coord{C(1, 2), C(2, 2), C(3, 2), C(4, 2)}},
		{Type: 4, Cells: []Coord{C(2, 2), C(2, 1), C(2, 3), C(1, 2), C(3, 2), C(2, 0)}, Axis: AxisBoth},
	}

	plans := planSpecials(groups, nil, 2)
	require.Len(t, plans, 1, "lower-priority placement on a taken slot is skipped")
	require.Equal(t, SpecialWildcard, plans[0].Cell.Special)
	require.Equal(t, C(2, 2), plans[0].Pos)
}

func TestPlanSpecialsKeepsDistinctTargets(t *testing.T) {
	groups := []MatchGroup{
		{Type: 1, Cells: []Coord{C(0, 0), C(1, 0), C(2, 0), C(3, 0)}},
		{Type: 2, Cells: []Coord{C(0, 4), C(1, 4), C(2, 4), C(3, 4)}},
	}
	plans := planSpecials(groups, nil, 2)
	require.Len(t, plans, 2)
	for _, p := range plans {
		require.Equal(t, SpecialAreaBomb, p.Cell.Special)
	}
}
