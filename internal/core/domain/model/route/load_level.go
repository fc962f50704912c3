package route

// LoadLevel classifies a route by its load ratio.
//
// The thresholds are asymmetric: a ratio of exactly 80 is Normal and exactly 100
// is NearCapacity.
//
//	ratio <= 80          Normal
//	80 < ratio <= 100    NearCapacity
//	ratio > 100          Overweight
type LoadLevel int

const (
	// Undefined is the level of a route with degenerate capacity.
	Undefined LoadLevel = iota

	// Normal is a load at or below 80%.
	Normal

	// NearCapacity is a load above 80% up to and including 100%.
	NearCapacity

	// Overweight is a load above 100%.
	Overweight
)

const (
	nearCapacityThreshold = 80
	overweightThreshold   = 100
)

// LevelForRatio classifies an integer load percentage.
func LevelForRatio(ratio int) LoadLevel {
	switch {
	case ratio > overweightThreshold:
		return Overweight
	case ratio > nearCapacityThreshold:
		return NearCapacity
	default:
		return Normal
	}
}

func getLoadLevelStrings() map[LoadLevel]string {
	return map[LoadLevel]string{
		Undefined:    "undefined",
		Normal:       "normal",
		NearCapacity: "near_capacity",
		Overweight:   "overweight",
	}
}

// String returns the name used in JSON views.
func (l LoadLevel) String() string {
	if s, ok := getLoadLevelStrings()[l]; ok {
		return s
	}
	return "undefined"
}

// IsOverweight reports whether the level needs error styling.
func (l LoadLevel) IsOverweight() bool {
	return l == Overweight
}
