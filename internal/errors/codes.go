package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
)

// Domain error codes
const (
	// CodeArgentCellOverfilled rejects a loadout that would consume every
	// Argent Cell upgrade slot before the game starts.
	CodeArgentCellOverfilled Code = "ARGENT_CELL_OVERFILLED"

	// CodeUnknownItem rejects a selection referencing an identifier outside
	// the closed catalog.
	CodeUnknownItem Code = "UNKNOWN_ITEM"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
