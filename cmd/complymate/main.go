package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/model"
	"github.com/complymate/complymate/internal/session"
	"github.com/complymate/complymate/internal/update"
)

func main() {
	cfgPath := os.Getenv("COMPLYMATE_CONFIG")
	if cfgPath == "" {
		cfgPath = model.DefaultConfigPath()
	}
	appCfg, err := model.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "complymate failed: %v\n", err)
		os.Exit(1)
	}

	runtimeCfg := update.DefaultRuntimeConfig()
	if appCfg.Display.InitialView != "" {
		runtimeCfg.InitialView = appCfg.Display.InitialView
	}
	if appCfg.Export.Dir != "" {
		runtimeCfg.ExportDir = appCfg.Export.Dir
	}
	// Environment variables override the config file.
	runtimeCfg = update.RuntimeConfigFromEnv(runtimeCfg)

	sess := session.New(appCfg.Directory())
	program := tea.NewProgram(update.NewModelWithConfig(sess, runtimeCfg, time.Now))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "complymate failed: %v\n", err)
		os.Exit(1)
	}
}
