package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"image-rotator/assets"
	"image-rotator/internal/cli"
	"image-rotator/internal/config"
	"image-rotator/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetPrefix("image-rotator: ")

	cfg, err := cli.ParseFlags()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}

	// No flags provided = use GUI
	if cfg == nil {
		runGUI()
		return
	}

	// Headless render mode
	result, err := cli.RenderRunner(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cli.PrintResult(result)
}

func runGUI() {
	appCfg, err := config.Load()
	if err != nil {
		log.Printf("Ignoring environment overrides: %v", err)
		appCfg = config.DefaultConfig()
	}
	if err := appCfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
	}

	src, err := assets.Load(appCfg.ImagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	a := app.NewWithID("com.image-rotator.gui")
	win := ui.BuildMainWindow(a, appCfg, src)
	win.ShowAndRun()
}
