package dice

// DiceError is a custom error type for dice service errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig      DiceError = "config cannot be nil"
	ErrNilRoller      DiceError = "dice roller cannot be nil"
	ErrNilClock       DiceError = "clock cannot be nil"
	ErrNilIDGenerator DiceError = "id generator cannot be nil"
	ErrNilInput       DiceError = "input cannot be nil"
)
