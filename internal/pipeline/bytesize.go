package pipeline

import (
	"fmt"
	"math"
)

var byteUnits = []string{"B", "K", "M", "G", "T"}

// FormatByteSize renders a byte count with 1024-based scaling and two
// decimal places: "0.00 B", "2.00 K", "1.00 M", ... Values of a petabyte
// and beyond stay in "P". Zero and negative inputs render without failing;
// a negative count is the caller's malformed input, not this stage's.
func FormatByteSize(n int64) string {
	v := float64(n)
	for _, unit := range byteUnits {
		if math.Abs(v) < 1024.0 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024.0
	}
	return fmt.Sprintf("%.2f P", v)
}
