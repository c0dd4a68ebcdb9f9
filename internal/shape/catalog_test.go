package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_MenuOrder(t *testing.T) {
	c := Default()

	want := []string{
		"Circle", "Rectangle", "Square", "Triangle", "Parallelogram",
		"Trapezoid", "Ellipse", "Regular Polygon", "Sector", "Annulus",
	}
	require.Equal(t, len(want), c.Size())

	entries := c.List()
	for i, name := range want {
		require.Equal(t, i+1, entries[i].Index)
		require.Equal(t, name, entries[i].Name)
	}
}

func TestDefault_ParameterNames(t *testing.T) {
	c := Default()

	tests := []struct {
		index int
		names []string
	}{
		{1, []string{"radius"}},
		{2, []string{"width", "height"}},
		{3, []string{"side"}},
		{4, []string{"base", "height"}},
		{5, []string{"base", "height"}},
		{6, []string{"base A", "base B", "height"}},
		{7, []string{"semi-major axis a", "semi-minor axis b"}},
		{8, []string{"number of sides", "side length"}},
		{9, []string{"radius", "central angle in degrees"}},
		{10, []string{"outer radius", "inner radius"}},
	}
	for _, tt := range tests {
		def, err := c.Get(tt.index)
		require.NoError(t, err)
		require.Equal(t, tt.names, def.ParameterNames(), "shape %d", tt.index)
		require.Equal(t, len(tt.names), def.Arity())
	}
}

func TestDefault_PolygonSidesIsIntAtLeastThree(t *testing.T) {
	def, err := Default().Get(8)
	require.NoError(t, err)
	require.Equal(t, IntAtLeast, def.Params[0].Kind)
	require.Equal(t, 3, def.Params[0].Min)
	require.Equal(t, Positive, def.Params[1].Kind)
}

func TestCatalog_GetOutOfRange(t *testing.T) {
	c := Default()

	for _, idx := range []int{0, -1, 11, 100} {
		_, err := c.Get(idx)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNotFound), "index %d", idx)
	}
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	c := Default()

	def, err := c.Get(2)
	require.NoError(t, err)
	def.Params[0].Name = "mutated"

	again, err := c.Get(2)
	require.NoError(t, err)
	require.Equal(t, "width", again.Params[0].Name, "catalog entries must not be mutable through Get")
}

func TestCatalog_RegisterAppends(t *testing.T) {
	c := Default()

	err := c.Register(Definition{
		Name:    "Rhombus",
		Params:  []Parameter{{Name: "diagonal p"}, {Name: "diagonal q"}},
		Formula: func(v []float64) float64 { return v[0] * v[1] / 2 },
	})
	require.NoError(t, err)
	require.Equal(t, 11, c.Size())

	entries := c.List()
	require.Equal(t, Entry{Index: 11, Name: "Rhombus"}, entries[10])

	def, err := c.Get(11)
	require.NoError(t, err)
	require.InDelta(t, 6.0, def.Compute([]float64{3, 4}), 1e-12)
}

func TestCatalog_RegisterDuplicate(t *testing.T) {
	c := Default()

	err := c.Register(Definition{
		Name:    "circle",
		Params:  []Parameter{{Name: "radius"}},
		Formula: func(v []float64) float64 { return v[0] },
	})
	require.ErrorIs(t, err, ErrDuplicate)
	require.Equal(t, 10, c.Size())
}

func TestCatalog_RegisterInvalid(t *testing.T) {
	formula := func(v []float64) float64 { return 0 }

	tests := []struct {
		name string
		def  Definition
		msg  string
	}{
		{"empty name", Definition{Name: " ", Params: []Parameter{{Name: "x"}}, Formula: formula}, "name is required"},
		{"nil formula", Definition{Name: "X", Params: []Parameter{{Name: "x"}}}, "formula is required"},
		{"no params", Definition{Name: "X", Formula: formula}, "at least one parameter"},
		{"blank param", Definition{Name: "X", Params: []Parameter{{Name: ""}}, Formula: formula}, "parameter 0"},
		{"bad min", Definition{Name: "X", Params: []Parameter{{Name: "n", Kind: IntAtLeast}}, Formula: formula}, "minimum"},
		{"bad kind", Definition{Name: "X", Params: []Parameter{{Name: "n", Kind: Kind(9)}}, Formula: formula}, "unknown kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog()
			err := c.Register(tt.def)
			require.ErrorIs(t, err, ErrInvalidDefinition)
			require.Contains(t, err.Error(), tt.msg)
			require.Equal(t, 0, c.Size())
		})
	}
}

func TestCatalog_DefinitionsInOrder(t *testing.T) {
	defs := Default().Definitions()
	require.Len(t, defs, 10)
	require.Equal(t, "Circle", defs[0].Name)
	require.Equal(t, "Annulus", defs[9].Name)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "positive", Positive.String())
	require.Equal(t, "int_at_least", IntAtLeast.String())
	require.Equal(t, "unknown", Kind(7).String())
}
