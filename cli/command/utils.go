package command

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/keepsake-backup/keepsake/factory"
	"github.com/mgutz/ansi"
	"github.com/urfave/cli"
)

func trapSigint(rotate bool) {
	sigintChan := make(chan os.Signal, 1)
	signal.Notify(sigintChan, os.Interrupt)

	var sigintQuestion, stdInErrorMessage, cancelledNotice string
	if rotate {
		sigintQuestion = rotateSigintQuestion
		stdInErrorMessage = rotateStdinErrorMessage
		cancelledNotice = rotateCancelledNotice
	} else {
		sigintQuestion = uploadSigintQuestion
		stdInErrorMessage = uploadStdinErrorMessage
		cancelledNotice = uploadCancelledNotice
	}

	go func() {
		for range sigintChan {
			stdinReader := bufio.NewReader(os.Stdin)
			factory.ApplicationLoggerStdout.Pause()
			factory.ApplicationLoggerStderr.Pause()
			fmt.Fprintln(os.Stdout, "\n"+sigintQuestion)
			input, err := stdinReader.ReadString('\n')
			if err != nil {
				fmt.Println("\n" + stdInErrorMessage)
			} else if strings.ToLower(strings.TrimSpace(input)) == "yes" {
				fmt.Println(cancelledNotice)
				os.Exit(1)
			}
			factory.ApplicationLoggerStdout.Resume()
			factory.ApplicationLoggerStderr.Resume()
		}
	}()
}

func writeStackTrace(errorWithStackTrace string) error {
	if errorWithStackTrace != "" {
		err := os.WriteFile(fmt.Sprintf("keepsake-%s.err.log", time.Now().UTC().Format(time.RFC3339)), []byte(errorWithStackTrace), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
