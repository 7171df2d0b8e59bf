package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodePlacementOutOfBounds = "PLACEMENT_OUT_OF_BOUNDS"
	CodePlacementOverlap     = "PLACEMENT_OVERLAP"
	CodePlacementExhausted   = "PLACEMENT_EXHAUSTED"
	CodeCoordOutOfRange      = "COORD_OUT_OF_RANGE"
	CodeCoordUnparseable     = "COORD_UNPARSEABLE"
	CodeCoordAlreadyAttacked = "COORD_ALREADY_ATTACKED"
	CodeTargetsExhausted     = "TARGETS_EXHAUSTED"
	CodeSessionWrongPhase    = "SESSION_WRONG_PHASE"
	CodePlayerNameEmpty      = "PLAYER_NAME_EMPTY"
	CodeOrientationInvalid   = "ORIENTATION_INVALID"
	CodeStorageLoadFailed    = "STORAGE_LOAD_FAILED"
	CodeStorageSaveFailed    = "STORAGE_SAVE_FAILED"
)

// enUSCatalog backs lookups when the embedded bundle has no errors namespace
// or misses a key for the requested locale.
var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Placement errors
		CodePlacementOutOfBounds: "Ship placement exceeds board boundaries!",
		CodePlacementOverlap:     "Space already occupied by another ship!",
		CodePlacementExhausted:   "No legal position left for the {{.Ship}}",

		// Attack coordinate errors
		CodeCoordOutOfRange:      "Invalid coordinates. Please try again.",
		CodeCoordUnparseable:     "Please enter valid coordinates (Row: 0-9, Column: A-J).",
		CodeCoordAlreadyAttacked: "You already attacked this position!",
		CodeTargetsExhausted:     "No untried coordinates remain",

		// Session errors
		CodeSessionWrongPhase:  "Action {{.Action}} is not allowed during {{.Phase}}",
		CodePlayerNameEmpty:    "Player name cannot be empty",
		CodeOrientationInvalid: "Please answer y or n.",

		// Storage errors
		CodeStorageLoadFailed: "Could not load player statistics from {{.Path}}",
		CodeStorageSaveFailed: "Could not save player statistics to {{.Path}}",
	},
}
