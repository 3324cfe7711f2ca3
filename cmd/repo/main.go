// Package main contains driver plugins repository server.
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-home-io/imager/plugins/common"
	"github.com/go-home-io/imager/systems/logger"
	"github.com/go-home-io/imager/systems/repository"
	"github.com/jessevdk/go-flags"
)

const logSystem = "repository"

type options struct {
	Folder string `short:"f" long:"folder" required:"yes" description:"Plugins repository folder."`
	Port   int    `short:"p" long:"port" default:"9090" description:"Listening port."`
}

// Serves driver archives for plugin loaders.
func main() {
	opts := &options{}
	if _, err := flags.Parse(opts); err != nil {
		os.Exit(1)
	}

	log := logger.NewConsoleLogger()
	repo := repository.NewRepository(&repository.ConstructRepository{
		Logger: log,
		Folder: opts.Folder,
	})

	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", opts.Port), repo.Router())
		if err != nil {
			log.Fatal("Failed to start repository", err, common.LogSystemToken, logSystem)
		}
	}()

	log.Info(fmt.Sprintf("Started repository on port %d", opts.Port), common.LogSystemToken, logSystem,
		common.LogFileToken, opts.Folder)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	repo.Stop()
	log.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
}
