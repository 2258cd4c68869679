// Package weight derives edge weights from the attributes of two nodes.
//
// A weight Func is a strategy value: loaders and callers receive it
// explicitly (loader.WithWeightFunc) instead of reading a global default.
// Every function here maps a distance d ≥ 0 to the closeness score
// 1/(1+d) ∈ (0,1], so identical nodes always get weight 1.
package weight

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sociograph/core"
)

// ErrConfig indicates an invalid weighted-formula configuration.
var ErrConfig = errors.New("weight: invalid formula configuration")

// Func produces an edge weight for the pair (a, b).
// Implementations must be symmetric and pure.
type Func func(a, b *core.Node) float64

// DefaultAttributes is the feature vector used by Euclidean.
var DefaultAttributes = []string{
	core.AttrActivity,
	core.AttrInteraction,
	core.AttrConnectionCount,
}

// FromDistance applies the closeness transform 1/(1+d).
// Complexity: O(1).
func FromDistance(d float64) float64 {
	return 1.0 / (1.0 + d)
}

// Euclidean is the default Func: the closeness of the
// (activity, interaction, connection_count) vectors of a and b.
// Complexity: O(1).
func Euclidean(a, b *core.Node) float64 {
	da := a.Activity - b.Activity
	di := a.Interaction - b.Interaction
	dc := a.ConnectionCount - b.ConnectionCount

	return FromDistance(math.Sqrt(da*da + di*di + dc*dc))
}

// Constant returns a Func that ignores attributes and always yields w.
func Constant(w float64) Func {
	return func(_, _ *core.Node) float64 { return w }
}

// NewWeighted builds a weighted-Euclidean Func over the named attributes:
//
//	d = sqrt( Σ scales[i] · (a[attr_i] − b[attr_i])² ),  weight = 1/(1+d)
//
// Attributes are resolved with core.Node.Attr; names a node lacks count as 0.
// A nil or empty scales slice means every scale is 1.0.
//
// Errors (all wrap ErrConfig):
//   - attrs is empty;
//   - len(scales) > 0 and len(scales) != len(attrs);
//   - a scale is negative, NaN or infinite.
//
// Complexity: O(len(attrs)) per call.
func NewWeighted(attrs []string, scales []float64) (Func, error) {
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: no attributes given", ErrConfig)
	}
	if len(scales) == 0 {
		scales = make([]float64, len(attrs))
		for i := range scales {
			scales[i] = 1.0
		}
	}
	if len(scales) != len(attrs) {
		return nil, fmt.Errorf("%w: %d attributes but %d scales", ErrConfig, len(attrs), len(scales))
	}
	for i, s := range scales {
		if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, fmt.Errorf("%w: scale %v for %q", ErrConfig, s, attrs[i])
		}
	}

	// Copy so later mutation of the caller's slices cannot change the formula.
	names := append([]string(nil), attrs...)
	ws := append([]float64(nil), scales...)

	return func(a, b *core.Node) float64 {
		var sum float64
		for i, name := range names {
			va, _ := a.Attr(name)
			vb, _ := b.Attr(name)
			diff := va - vb
			sum += ws[i] * diff * diff
		}

		return FromDistance(math.Sqrt(sum))
	}, nil
}
