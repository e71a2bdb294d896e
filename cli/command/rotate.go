package command

import (
	"fmt"

	"github.com/keepsake-backup/keepsake/config"
	"github.com/keepsake-backup/keepsake/factory"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type RotateCommand struct {
}

func NewRotateCommand() RotateCommand {
	return RotateCommand{}
}

func (r RotateCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "rotate",
		Aliases: []string{"r"},
		Usage:   "Run the full artifact lifecycle: count, copy, upload and rotate every tier",
		Action:  r.Action,
		Flags: []cli.Flag{cli.StringFlag{
			Name:  "artifact, a",
			Usage: "Path of the freshly produced backup artifact (optional, rotation-only run without it)",
		}},
	}
}

func (r RotateCommand) Action(c *cli.Context) error {
	trapSigint(true)

	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return redCliError(err)
	}

	logger := factory.BuildLoggerWithRotatingFile(c.GlobalBool("debug"), c.GlobalString("log-file"))
	runner := factory.BuildLifecycleRunner(cfg, logger)

	session, runErrs := runner.Run(c.String("artifact"))

	errorCode, errorMessage, errorWithStackTrace := orchestrator.ProcessError(runErrs, session.Ledger())
	if err := writeStackTrace(errorWithStackTrace); err != nil {
		return errors.Wrap(runErrs, err.Error())
	}

	if errorMessage == "" && errorCode != 0 {
		errorMessage = ledgerMessage(session.Ledger())
	}

	return cli.NewExitError(errorMessage, errorCode)
}

func ledgerMessage(ledger *orchestrator.Ledger) string {
	message := ""
	for _, entry := range ledger.Entries() {
		if entry.Severity >= orchestrator.SeverityWarning {
			message = message + fmt.Sprintf("%s [%s] %s\n", entry.Severity, entry.Category, entry.Message)
		}
	}
	return message
}
