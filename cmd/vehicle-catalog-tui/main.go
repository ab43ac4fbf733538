package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/vehicle-catalog/internal/config"
	"github.com/handiism/vehicle-catalog/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if flag.NArg() > 0 {
		settings.CatalogPath = flag.Arg(0)
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
