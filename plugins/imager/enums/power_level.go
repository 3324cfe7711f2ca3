//go:generate enumer -type=PowerLevel -transform=kebab -trimprefix=Power -yaml

package enums

// PowerLevel describes enum with sub-device power states.
type PowerLevel int

const (
	// PowerOff describes fully powered down device.
	PowerOff PowerLevel = iota
	// PowerStandby describes low power state with preserved registers.
	PowerStandby
	// PowerOn describes fully powered device.
	PowerOn
)
