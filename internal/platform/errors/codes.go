// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Placement errors
	CodePlacementOutOfBounds Code = "PLACEMENT_OUT_OF_BOUNDS"
	CodePlacementOverlap     Code = "PLACEMENT_OVERLAP"
	CodePlacementExhausted   Code = "PLACEMENT_EXHAUSTED"

	// Attack coordinate errors
	CodeCoordOutOfRange      Code = "COORD_OUT_OF_RANGE"
	CodeCoordUnparseable     Code = "COORD_UNPARSEABLE"
	CodeCoordAlreadyAttacked Code = "COORD_ALREADY_ATTACKED"
	CodeTargetsExhausted     Code = "TARGETS_EXHAUSTED"

	// Session errors
	CodeSessionWrongPhase  Code = "SESSION_WRONG_PHASE"
	CodePlayerNameEmpty    Code = "PLAYER_NAME_EMPTY"
	CodeOrientationInvalid Code = "ORIENTATION_INVALID"

	// Storage errors
	CodeStorageLoadFailed Code = "STORAGE_LOAD_FAILED"
	CodeStorageSaveFailed Code = "STORAGE_SAVE_FAILED"
)

// Retryable reports whether an error with this code is recovered locally by
// asking the same side for another input without consuming its turn.
func (c Code) Retryable() bool {
	switch c {
	case CodePlacementOutOfBounds,
		CodePlacementOverlap,
		CodeCoordOutOfRange,
		CodeCoordUnparseable,
		CodeCoordAlreadyAttacked,
		CodePlayerNameEmpty,
		CodeOrientationInvalid:
		return true
	default:
		return false
	}
}

// MessageKey returns the catalog key of the user-facing message for c.
func (c Code) MessageKey() string {
	return string(c)
}
