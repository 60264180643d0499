package hydra

import "fmt"

// Profile hints at the caller's priorities (latency vs. code size vs.
// power draw). Sort accepts it but does not use it to choose a strategy;
// all three values dispatch identically.
type Profile int

const (
	ProfileUltraFast Profile = iota
	ProfileBalanced
	ProfileLowPower
)

func (p Profile) String() string {
	switch p {
	case ProfileUltraFast:
		return "UltraFast"
	case ProfileBalanced:
		return "Balanced"
	case ProfileLowPower:
		return "LowPower"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}
