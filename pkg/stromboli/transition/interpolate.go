package transition

// Prop names an animatable style property.
//
// This is intentionally a string type so style maps serialize cleanly and
// host renderers can pass unknown properties through.
type Prop string

const (
	PropOpacity Prop = "opacity"
	PropX       Prop = "x"
	PropY       Prop = "y"
	PropWidth   Prop = "width"
	PropHeight  Prop = "height"
	PropScaleX  Prop = "scaleX"
	PropScaleY  Prop = "scaleY"
)

// Interpolation is a piecewise-linear mapping from transition progress to a
// property value. InputRange must be non-decreasing and the same length as
// OutputRange (at least two entries). Progress outside the input range clamps
// to the nearest output value.
type Interpolation struct {
	InputRange  []float64
	OutputRange []float64
}

// Interp builds a two-stop interpolation, the common case.
func Interp(in0, in1, out0, out1 float64) Interpolation {
	return Interpolation{
		InputRange:  []float64{in0, in1},
		OutputRange: []float64{out0, out1},
	}
}

// Eval maps a progress value through the interpolation.
func (ip Interpolation) Eval(t float64) float64 {
	n := len(ip.InputRange)
	if n == 0 || len(ip.OutputRange) != n {
		return 0
	}
	if t <= ip.InputRange[0] {
		return ip.OutputRange[0]
	}
	if t >= ip.InputRange[n-1] {
		return ip.OutputRange[n-1]
	}
	for i := 1; i < n; i++ {
		hi := ip.InputRange[i]
		if t > hi {
			continue
		}
		lo := ip.InputRange[i-1]
		span := hi - lo
		if span == 0 {
			return ip.OutputRange[i]
		}
		frac := (t - lo) / span
		return ip.OutputRange[i-1] + frac*(ip.OutputRange[i]-ip.OutputRange[i-1])
	}
	return ip.OutputRange[n-1]
}

// Style is an animated style descriptor: property -> interpolation over
// progress. Absence of a property means "leave it alone".
type Style map[Prop]Interpolation

// Eval resolves every property at the given progress.
func (s Style) Eval(t float64) map[Prop]float64 {
	out := make(map[Prop]float64, len(s))
	for p, ip := range s {
		out[p] = ip.Eval(t)
	}
	return out
}

// merge overlays other onto s, returning a new Style. Properties in other
// win on conflict.
func (s Style) merge(other Style) Style {
	out := make(Style, len(s)+len(other))
	for p, ip := range s {
		out[p] = ip
	}
	for p, ip := range other {
		out[p] = ip
	}
	return out
}
