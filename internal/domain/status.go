package domain

import "math"

// CapacityStatus classifies allocated-vs-estimated weeks into a badge.
// Every capacity badge in the tool funnels through this one function:
//
//   - no estimate and no allocation: neutral
//   - allocated without an estimate: warning
//   - within 5% of the estimate: success
//   - within 25%: warning
//   - further off: error
func CapacityStatus(allocated, estimated float64) BadgeType {
	if estimated == 0 {
		if allocated == 0 {
			return BadgeNeutral
		}
		return BadgeWarning
	}

	diffPct := math.Abs((allocated-estimated)/estimated) * 100
	switch {
	case diffPct <= 5:
		return BadgeSuccess
	case diffPct <= 25:
		return BadgeWarning
	default:
		return BadgeError
	}
}
