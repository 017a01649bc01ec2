package color

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Delta E interpretation on the classic scale:
//
//	< 1    not perceptible by the human eye
//	1-2    perceptible through close observation
//	2-10   perceptible at a glance
//	11-49  more similar than opposite
//	>= 50  close to opposite colors
const (
	// DistinguishabilityFloor is the hard lower bound for adjacent
	// palette colors.
	DistinguishabilityFloor = 5.0
)

// DeltaE is the CIEDE2000 color difference on the classic 0-100 scale.
// go-colorful computes the formula on its normalized Lab coordinates
// and scales the result down by 100; the multiplication here restores
// the conventional scale (black to white is 100).
func DeltaE(a, b colorful.Color) float64 {
	return a.DistanceCIEDE2000(b) * 100.0
}

// DeltaEHex computes DeltaE between two hex colors.
func DeltaEHex(a, b string) (float64, error) {
	ca, err := ParseHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := ParseHex(b)
	if err != nil {
		return 0, err
	}
	return DeltaE(ca, cb), nil
}
