//go:generate enumer -type=Position -transform=kebab -trimprefix=Position -yaml

package enums

// Position describes enum with physical camera positions on a board.
// Values match auto-select slot identifiers.
type Position int

const (
	// PositionRear describes rear facing camera slot.
	PositionRear Position = iota
	// PositionFront describes front facing camera slot.
	PositionFront
)
