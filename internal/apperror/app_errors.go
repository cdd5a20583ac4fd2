package apperror

import "errors"

var (
	ErrMalformedInput        = errors.New("malformed coordinates")
	ErrNonNumericCoordinate  = errors.New("coordinate is not a number")
	ErrOutOfBoundsCoordinate = errors.New("coordinate is out of bounds")
	ErrOccupiedCell          = errors.New("cell is already occupied")
	ErrInputStream           = errors.New("failed to read input")
)

// rejectionMessages - what the player is told for each recoverable move error.
var rejectionMessages = []struct {
	err     error
	message string
}{
	{ErrMalformedInput, "Please enter the coordinates in the format: row,col"},
	{ErrNonNumericCoordinate, "Invalid input. Please enter valid numbers."},
	{ErrOutOfBoundsCoordinate, "Coordinates out of bounds. Please try again."},
	{ErrOccupiedCell, "Invalid move. Cell is already occupied. Try again."},
}

// Message - returns the player-facing text for a recoverable move error.
// The second value is false when err is not one of the recoverable move errors.
func Message(err error) (string, bool) {
	for _, rejection := range rejectionMessages {
		if errors.Is(err, rejection.err) {
			return rejection.message, true
		}
	}

	return "", false
}

func IsRecoverable(err error) bool {
	_, ok := Message(err)
	return ok
}
