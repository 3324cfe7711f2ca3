package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/server"
	"github.com/jessevdk/go-flags"
)

// Imager selector argument.
type guidArgs struct {
	GUID string `positional-arg-name:"guid" description:"Slot, index, tag or hex GUID. Defaults to rear slot."`
}

type listCommand struct {
}

type openCommand struct {
	Args guidArgs `positional-args:"yes"`
}

type paramsCommand struct {
	Filter string   `short:"f" long:"filter" default:"*" description:"Parameter name glob."`
	Args   guidArgs `positional-args:"yes"`
}

type powerCommand struct {
	Args struct {
		GUID  string `positional-arg-name:"guid"`
		Level string `positional-arg-name:"level" description:"off, standby or on"`
	} `positional-args:"yes" required:"yes"`
}

func registerCommands(parser *flags.Parser) {
	parser.AddCommand("list", "List drivers", "Lists registered sensor, focuser and flash drivers.", // nolint: errcheck
		&listCommand{})
	parser.AddCommand("open", "Describe imager", "Opens an imager and prints its capabilities.", // nolint: errcheck
		&openCommand{})
	parser.AddCommand("params", "Dump parameters", "Opens an imager and reads its parameters.", // nolint: errcheck
		&paramsCommand{})
	parser.AddCommand("power", "Set power level", "Opens an imager and applies a power level.", // nolint: errcheck
		&powerCommand{})
}

// Execute lists drivers.
func (c *listCommand) Execute([]string) error {
	srv, done, err := start()
	if err != nil {
		return err
	}
	defer done()

	for _, v := range srv.ListDrivers() {
		kind := v.Plugin
		if v.Virtual {
			kind = "built-in"
		}

		fmt.Printf("%-8s %-20s %s\n", v.Class.String(), color.CyanString(v.GUID.String()), kind)
	}

	return nil
}

// Execute prints imager description.
func (c *openCommand) Execute([]string) error {
	guid, err := parseGUID(c.Args.GUID)
	if err != nil {
		return err
	}

	srv, done, err := start()
	if err != nil {
		return err
	}
	defer done()

	desc, err := srv.Describe(guid)
	if err != nil {
		return err
	}

	printDescription(desc)
	return nil
}

// Execute prints parameters.
func (c *paramsCommand) Execute([]string) error {
	guid, err := parseGUID(c.Args.GUID)
	if err != nil {
		return err
	}

	srv, done, err := start()
	if err != nil {
		return err
	}
	defer done()

	values, err := srv.DumpParameters(guid, c.Filter)
	if err != nil {
		return err
	}

	for _, v := range values {
		if v.Err != nil {
			fmt.Printf("%-40s %s\n", v.Param.String(), color.RedString(v.Err.Error()))
			continue
		}

		fmt.Printf("%-40s %v\n", v.Param.String(), v.Value)
	}

	return nil
}

// Execute applies power level.
func (c *powerCommand) Execute([]string) error {
	guid, err := parseGUID(c.Args.GUID)
	if err != nil {
		return err
	}

	srv, done, err := start()
	if err != nil {
		return err
	}
	defer done()

	level, err := srv.SetPower(guid, c.Args.Level)
	if err != nil {
		return err
	}

	color.Green("Power level: %s", level.String())
	return nil
}

func parseGUID(arg string) (imager.GUID, error) {
	if "" == arg {
		return imager.SlotRear, nil
	}

	return imager.ParseGUID(arg)
}

func printDescription(desc *server.ImagerDescription) {
	caps := desc.Capabilities
	color.Green("%s", caps.Identifier)
	fmt.Printf("  sensor:    %s\n", desc.Sensor.String())
	fmt.Printf("  focuser:   %s\n", desc.Focuser.String())
	fmt.Printf("  flash:     %s\n", desc.Flash.String())
	fmt.Printf("  interface: %s\n", caps.SensorInterface)
	fmt.Printf("  pixels:    %v\n", caps.PixelTypes)
	fmt.Printf("  clock:     %d kHz\n", caps.InitialClockKHz)
	fmt.Printf("  power:     %s\n", desc.Power.String())

	if desc.Static.FocuserAvailable {
		fmt.Printf("  focus:     %d..%d\n", desc.Static.FocuserPositions.Min, desc.Static.FocuserPositions.Max)
	}

	if desc.Static.FlashAvailable {
		fmt.Printf("  flash charge: %d us\n", desc.Static.FlashChargeDurationUS)
	}

	color.Cyan("Modes")
	for _, v := range desc.Static.SensorModes {
		fmt.Printf("  %dx%d @ %.1f fps (%s)\n", v.ActiveDimensions.Width, v.ActiveDimensions.Height,
			v.PeakFrameRate, v.Type)
	}
}
