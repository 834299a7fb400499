package meshid_test

import (
	"testing"

	"github.com/nodemesh/router/meshid"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Sequence(t *testing.T) {
	g := meshid.NewGenerator("SP")
	require.Equal(t, "SP0", g.Next())
	require.Equal(t, "SP1", g.Next())
	require.Equal(t, "SP2", g.Next())
	require.Equal(t, uint64(3), g.Count())
}

func TestGenerator_IndependentPrefixes(t *testing.T) {
	cells := meshid.NewGenerator("C")
	points := meshid.NewGenerator("SP")

	require.Equal(t, "C0", cells.Next())
	require.Equal(t, "SP0", points.Next())
	require.Equal(t, "C1", cells.Next())
}
