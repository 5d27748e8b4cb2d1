// Package keys derives cache keys for rendered drawings.
package keys

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/pooldraft/pooldraft/internal/geometry"
)

// Fingerprint returns a stable hash of the normalized spec. Two specs
// that round-trip to the same canonical string share one fingerprint,
// so a clamped spec and its already-clamped twin hit the same entries.
func Fingerprint(spec geometry.PoolSpec) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(canonical(spec)))
}

// DrawingKey keys one rendered view of one spec.
func DrawingKey(view string, spec geometry.PoolSpec) string {
	return "drawing:" + sanitizeView(view) + ":" + Fingerprint(spec)
}

// canonical serializes the spec with fixed order and precision. The
// input fields carry centimetre-step values, so six decimals is more
// than enough to keep distinct specs distinct.
func canonical(spec geometry.PoolSpec) string {
	return fmt.Sprintf("l=%.6f|w=%.6f|dk=%.6f|da=%.6f|kz=%.6f|wt=%.6f|ft=%.6f|st=%.6f",
		spec.Length, spec.Width, spec.DepthKids, spec.DepthAdults,
		spec.KidsZoneLength, spec.WallThickness, spec.FloorThickness, spec.SoilThickness)
}

func sanitizeView(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('-')
	}
	return b.String()
}
