package hsluv

import "math"

// vec3 is a three-component column vector.
type vec3 [3]float64

// mat3 is a row-major 3x3 matrix.
type mat3 [3]vec3

// m converts linear XYZ to linear sRGB (sRGB primaries, D65 white).
var m = mat3{
	{3.24096994190452134377, -1.53738317757009345794, -0.49861076029300328366},
	{-0.96924363628087982613, 1.87596750150772066772, 0.04155505740717561247},
	{0.05563007969699360846, -0.20397695888897656435, 1.05697151424287856072},
}

// mInv converts linear sRGB to XYZ. It is the inverse of m.
var mInv = mat3{
	{0.41239079926595948129, 0.35758433938387796373, 0.18048078840183428751},
	{0.21263900587151035754, 0.71516867876775592746, 0.07219231536073371500},
	{0.01933081871559185069, 0.11919477979462598791, 0.95053215224966058086},
}

// CIE constants and the D65 reference white in u'v' chromaticity.
const (
	refU = 0.19783000664283680764
	refV = 0.46831999493879100370

	kappa   = 903.29629629629629629630
	epsilon = 0.00885645167903563082
)

func dot(a, b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// mul returns mat·v.
func (mat mat3) mul(v vec3) vec3 {
	return vec3{dot(mat[0], v), dot(mat[1], v), dot(mat[2], v)}
}

// fromLinear applies the sRGB transfer function (companding) to one
// linear-light channel.
func fromLinear(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// toLinear removes the sRGB transfer function from one channel.
func toLinear(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}
