package main

import (
	"os"

	"github.com/go-home-io/imager/server"
	"github.com/go-home-io/imager/settings"
	"github.com/jessevdk/go-flags"
)

var options = &settings.StartUpOptions{}

func main() {
	parser := flags.NewParser(options, flags.Default)
	registerCommands(parser)

	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && flags.ErrHelp == e.Type {
			os.Exit(0)
		}

		os.Exit(1)
	}
}

// Loads settings and drivers.
// Returned function releases settings resources.
func start() (*server.ImagerServer, func(), error) {
	s, err := settings.Load(options)
	if err != nil {
		return nil, nil, err
	}

	srv, err := server.NewServer(s)
	if err != nil {
		s.Flush()
		return nil, nil, err
	}

	return srv, s.Flush, nil
}
