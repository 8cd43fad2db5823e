package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/soocke/campip-go/app"
	"github.com/soocke/campip-go/config"
	"github.com/soocke/campip-go/domain/device"
)

func main() {
	cfgPath := flag.String("config", "campip.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	listDevices := flag.Bool("list-devices", false, "print the detected cameras and exit")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	logger := NewLogger(cfg.Debug)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if *listDevices {
		printDevices(logger)
		return
	}

	container := app.BuildContainer(cfg, *cfgPath, logger)
	app.NewApp(container).Run()
}

func printDevices(logger *slog.Logger) {
	dir := device.NewMediaDirectory(logger)
	list := dir.List().Dedup()
	if len(list) == 0 {
		fmt.Println("no cameras detected")
		return
	}
	for i, d := range list {
		fmt.Printf("%d. %s [%s, %s] id=%s\n", i+1, d.Name, d.Class, d.Position, d.ID)
	}
}
