//go:generate enumer -type=PeripheralClass -transform=kebab -trimprefix=Peripheral -yaml

package enums

// PeripheralClass describes enum with peripheral database classes.
type PeripheralClass int

const (
	// PeripheralImager describes camera modules.
	PeripheralImager PeripheralClass = iota
	// PeripheralDisplay describes display panels.
	PeripheralDisplay
	// PeripheralAudio describes audio codecs.
	PeripheralAudio
	// PeripheralOther describes anything else.
	PeripheralOther
)
