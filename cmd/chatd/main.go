package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Japjeet07/ChefMaker-sub000/internal/config"
	"github.com/Japjeet07/ChefMaker-sub000/internal/daemon"
	"github.com/Japjeet07/ChefMaker-sub000/internal/session"
	"go.uber.org/fx"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	configFlag := flag.String("config", session.ConfigPath(), "path to config.toml")
	envFlag := flag.String("env", session.EnvPath(), "path to an optional .env file")
	flag.Parse()

	cfg, err := config.LoadLayered(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: config: %v\n", err)
		os.Exit(1)
	}

	sessionName := session.FromConfig(*sessionFlag, cfg)
	if err := session.ValidateName(sessionName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		daemon.Module(daemon.Params{SessionName: sessionName, Config: cfg}),
	)

	app.Run()
}
