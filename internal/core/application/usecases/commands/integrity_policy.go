package commands

// IntegrityPolicy decides what a reassignment does with an integrity error.
type IntegrityPolicy int

const (
	// SurfaceIntegrityErrors returns the error to the caller.
	SurfaceIntegrityErrors IntegrityPolicy = iota

	// DropIntegrityErrors logs the error and reports the unchanged board.
	DropIntegrityErrors
)

// IntegrityPolicyForEnv returns DropIntegrityErrors for "prod" and
// SurfaceIntegrityErrors for every other environment.
func IntegrityPolicyForEnv(env string) IntegrityPolicy {
	if env == "prod" {
		return DropIntegrityErrors
	}
	return SurfaceIntegrityErrors
}

func (p IntegrityPolicy) String() string {
	switch p {
	case SurfaceIntegrityErrors:
		return "surface"
	case DropIntegrityErrors:
		return "drop"
	default:
		return "unknown"
	}
}
