package rigel

import "github.com/kevmo314/go-uvcprops/pkg/property"

// EncodeGain maps a gain value onto the sensor's gain code. The code space is
// piecewise linear with the step size doubling in every segment, so the
// segments do not join smoothly and there is no inverse.
func EncodeGain(v float64) int32 {
	g := property.Truncate(v)
	switch {
	case g < 16:
		return 0x00
	case g < 32:
		return 0x00 + (g - 16)
	case g < 63:
		return 0x10 + (g-31)>>1
	case g < 126:
		return 0x20 + (g-62)>>2
	case g < 252:
		return 0x30 + (g-124)>>3
	}
	return 0x40 + (g-248)>>4
}
