package orchestrator

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

type customError struct {
	error
}

// TierAccessError is the one hard per-tier failure: the tier's directory
// cannot be created or accessed. Transfer and rotation failures never become
// hard errors; they are recorded in the ledger and the run continues.
type TierAccessError customError

func NewTierAccessError(errorMessage string) TierAccessError {
	return TierAccessError{errors.New(errorMessage)}
}

func ConvertErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return Error(errs)
}

type Error []error

func (err Error) Error() string {
	return err.PrettyError(false)
}

func (err Error) PrettyError(includeStacktrace bool) string {
	if err.IsNil() {
		return ""
	}
	var buffer = bytes.NewBufferString("")

	fmt.Fprintf(buffer, "%d error%s occurred:\n", len(err), err.getPostFix())
	for index, err := range err {
		fmt.Fprintf(buffer, "error %d:\n", index+1)
		if includeStacktrace {
			fmt.Fprintf(buffer, "%+v\n", err)
		} else {
			fmt.Fprintf(buffer, "%+v\n", err.Error())
		}
	}
	return buffer.String()
}

func (err Error) getPostFix() string {
	errorPostfix := ""
	if len(err) > 1 {
		errorPostfix = "s"
	}
	return errorPostfix
}

func (err Error) IsNil() bool {
	return len(err) == 0
}

// ProcessError folds accumulated tier errors and the ledger's severity into
// the final exit code and user-facing message. Severity never downgrades: a
// critical ledger entry or any hard tier error yields exit code 2, warnings
// alone yield 1.
func ProcessError(errs Error, ledger *Ledger) (int, string, string) {
	exitCode := ledger.ExitCode()
	if !errs.IsNil() && exitCode < 2 {
		exitCode = 2
	}

	message := ""
	stackTrace := ""
	if !errs.IsNil() {
		message = errs.PrettyError(false)
		stackTrace = errs.PrettyError(true)
	}

	return exitCode, message, stackTrace
}
