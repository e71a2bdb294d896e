package orchestrator

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Logger is the leveled logger every lifecycle component writes to. The
// signatures line up with bosh-utils' logger so one application logger can be
// passed straight through.
//
//counterfeiter:generate -o fakes/fake_logger.go . Logger
type Logger interface {
	Debug(tag, msg string, args ...interface{})
	Info(tag, msg string, args ...interface{})
	Warn(tag, msg string, args ...interface{})
	Error(tag, msg string, args ...interface{})
}
