package geom_test

import (
	"errors"
	"testing"

	"github.com/nodemesh/router/geom"
	"github.com/stretchr/testify/require"
)

func TestLayerNameToZ(t *testing.T) {
	names := []string{"top", "bottom"}

	z, err := geom.LayerNameToZ(names, "top")
	require.NoError(t, err)
	require.Equal(t, geom.ZTop, z)

	z, err = geom.LayerNameToZ(names, "bottom")
	require.NoError(t, err)
	require.Equal(t, geom.ZBottom, z)

	_, err = geom.LayerNameToZ(names, "inner1")
	require.True(t, errors.Is(err, geom.ErrUnknownLayer))
}

func TestZToLayerName(t *testing.T) {
	names := []string{"top", "bottom"}

	name, err := geom.ZToLayerName(names, geom.ZTop)
	require.NoError(t, err)
	require.Equal(t, "top", name)

	_, err = geom.ZToLayerName(names, geom.Z(5))
	require.True(t, errors.Is(err, geom.ErrUnknownLayer))
}

func TestLayerSet(t *testing.T) {
	both := geom.Both()
	require.True(t, both.Has(geom.ZTop))
	require.True(t, both.Has(geom.ZBottom))

	single := geom.Single(geom.ZBottom)
	require.False(t, single.Has(geom.ZTop))
	require.True(t, single.Has(geom.ZBottom))
	require.True(t, single.Overlaps(both))

	clone := both.Clone()
	clone[0] = geom.ZBottom
	require.Equal(t, geom.ZTop, both[0], "Clone must not alias the original backing array")
}
