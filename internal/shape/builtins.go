package shape

import "math"

// MsgInnerRadius is printed when an annulus inner radius is not smaller than
// the outer radius.
const MsgInnerRadius = "Inner radius must be smaller than outer radius."

// MinPolygonSides is the smallest side count for which tan(π/n) is usable.
const MinPolygonSides = 3

func positive(name string) Parameter {
	return Parameter{Name: name, Kind: Positive}
}

// Builtins returns the compiled-in shapes in menu order.
func Builtins() []Definition {
	return []Definition{
		{
			Name:    "Circle",
			Params:  []Parameter{positive("radius")},
			Formula: func(v []float64) float64 { return math.Pi * v[0] * v[0] },
		},
		{
			Name:    "Rectangle",
			Params:  []Parameter{positive("width"), positive("height")},
			Formula: func(v []float64) float64 { return v[0] * v[1] },
		},
		{
			Name:    "Square",
			Params:  []Parameter{positive("side")},
			Formula: func(v []float64) float64 { return v[0] * v[0] },
		},
		{
			Name:    "Triangle",
			Params:  []Parameter{positive("base"), positive("height")},
			Formula: func(v []float64) float64 { return 0.5 * v[0] * v[1] },
		},
		{
			Name:    "Parallelogram",
			Params:  []Parameter{positive("base"), positive("height")},
			Formula: func(v []float64) float64 { return v[0] * v[1] },
		},
		{
			Name:    "Trapezoid",
			Params:  []Parameter{positive("base A"), positive("base B"), positive("height")},
			Formula: func(v []float64) float64 { return 0.5 * (v[0] + v[1]) * v[2] },
		},
		{
			Name:    "Ellipse",
			Params:  []Parameter{positive("semi-major axis a"), positive("semi-minor axis b")},
			Formula: func(v []float64) float64 { return math.Pi * v[0] * v[1] },
		},
		{
			Name: "Regular Polygon",
			Params: []Parameter{
				{Name: "number of sides", Kind: IntAtLeast, Min: MinPolygonSides},
				positive("side length"),
			},
			Formula: func(v []float64) float64 {
				n, s := v[0], v[1]
				return (n * s * s) / (4 * math.Tan(math.Pi/n))
			},
		},
		{
			Name:    "Sector",
			Params:  []Parameter{positive("radius"), positive("central angle in degrees")},
			Formula: func(v []float64) float64 { return math.Pi * v[0] * v[0] * (v[1] / 360) },
		},
		{
			Name:    "Annulus",
			Params:  []Parameter{positive("outer radius"), positive("inner radius")},
			Formula: func(v []float64) float64 { return math.Pi * (v[0]*v[0] - v[1]*v[1]) },
			Check: func(v []float64) *Violation {
				if v[1] >= v[0] {
					return &Violation{Field: 1, Message: MsgInnerRadius}
				}
				return nil
			},
		},
	}
}
