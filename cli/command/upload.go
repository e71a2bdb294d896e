package command

import (
	"fmt"

	"github.com/keepsake-backup/keepsake/config"
	"github.com/keepsake-backup/keepsake/factory"
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

type UploadCommand struct {
}

func NewUploadCommand() UploadCommand {
	return UploadCommand{}
}

func (u UploadCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "upload",
		Aliases: []string{"u"},
		Usage:   "Upload a single artifact to the cloud tier without rotating",
		Action:  u.Action,
		Flags: []cli.Flag{cli.StringFlag{
			Name:  "artifact, a",
			Usage: "Path of the backup artifact to upload",
		}},
	}
}

func (u UploadCommand) Action(c *cli.Context) error {
	trapSigint(false)

	if c.String("artifact") == "" {
		return redCliError(errors.New("--artifact flag is required."))
	}

	cfg, err := config.Load(c.GlobalString("config"))
	if err != nil {
		return redCliError(err)
	}
	if !cfg.Cloud.Enabled {
		return redCliError(errors.New("cloud tier is not enabled in the config"))
	}

	logger := factory.BuildLoggerWithRotatingFile(c.GlobalBool("debug"), c.GlobalString("log-file"))
	store := factory.BuildRemoteStore(cfg, logger)
	uploader := factory.BuildUploader(cfg, store, logger)

	status, uploadErr := uploader.Upload(c.String("artifact"))

	return uploadExitError(c.String("artifact"), status, uploadErr)
}

func uploadExitError(artifactPath string, status orchestrator.TransferStatus, uploadErr error) *cli.ExitError {
	switch status {
	case orchestrator.TransferVerified:
		fmt.Printf("Uploaded and verified '%s'.\n", artifactPath)
		return cli.NewExitError("", 0)
	case orchestrator.TransferUnverified:
		return cli.NewExitError(fmt.Sprintf("Uploaded '%s' but could not verify the remote copy: %s", artifactPath, uploadErr), 1)
	default:
		return cli.NewExitError(fmt.Sprintf("Failed to upload '%s': %s", artifactPath, uploadErr), 2)
	}
}
