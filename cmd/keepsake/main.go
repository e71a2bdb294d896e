package main

import (
	"log"
	"os"

	"github.com/keepsake-backup/keepsake/cli/command"
	"github.com/keepsake-backup/keepsake/cli/flags"
	"github.com/urfave/cli"
)

var version string

func main() {
	cli.AppHelpTemplate = helpTextTemplate

	app := cli.NewApp()

	app.Version = version
	app.Name = "keepsake"
	app.Usage = "Tiered retention for backup artifacts"
	app.HelpName = "keepsake"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "config",
			Value:  "",
			EnvVar: "KEEPSAKE_CONFIG",
			Usage:  "Path to the tier configuration file",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "Also write logs to this file, with size-based rotation",
		},
	}

	app.Before = func(c *cli.Context) error {
		return flags.Validate([]string{"config"}, c)
	}

	app.Commands = []cli.Command{
		command.NewRotateCommand().Cli(),
		command.NewUploadCommand().Cli(),
		{
			Name:  "version",
			Usage: "",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
