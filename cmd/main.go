package main

import (
	"log"
	"os"

	"github.com/qrforge/qrforge/cmd/app"
	"github.com/qrforge/qrforge/internal/adapters/config"
	"github.com/qrforge/qrforge/internal/adapters/controller/cli"
)

func main() {
	settings := config.Get()
	a, err := app.New(settings)
	if err != nil {
		log.Panic(err)
	}

	if err := cli.Setup(a).Execute(); err != nil {
		a.Logger.Errorf("%v", err)
		os.Exit(1)
	}
}
