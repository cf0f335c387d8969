package probe

// BoundsChecking indexes position 0 of an empty slice to raise a
// deterministic index-out-of-range panic. It exists solely as a categorized
// failure signal for the metrics pipeline's bounds_checking pattern.
var BoundsChecking = Probe{
	Category:    "bounds_checking",
	Description: "intentional out-of-bounds access on an empty slice",
	Body: func() {
		var xs []int
		_ = xs[0]
	},
}
