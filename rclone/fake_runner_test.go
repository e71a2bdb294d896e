package rclone_test

import (
	"io"
	"time"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type fakeProcess struct {
	result     boshsys.Result
	hang       bool
	terminated bool
}

func (p *fakeProcess) Wait() <-chan boshsys.Result {
	ch := make(chan boshsys.Result, 1)
	if !p.hang {
		ch <- p.result
	}
	return ch
}

func (p *fakeProcess) TerminateNicely(killGracePeriod time.Duration) error {
	p.terminated = true
	return nil
}

type fakeCmdRunner struct {
	commands      []boshsys.Command
	stdins        []string
	processes     []*fakeProcess
	startErr      error
	commandExists bool
}

func newFakeCmdRunner() *fakeCmdRunner {
	return &fakeCmdRunner{commandExists: true}
}

func (r *fakeCmdRunner) addProcess(process *fakeProcess) {
	r.processes = append(r.processes, process)
}

func (r *fakeCmdRunner) RunComplexCommandAsync(cmd boshsys.Command) (boshsys.Process, error) {
	r.commands = append(r.commands, cmd)
	stdin := ""
	if cmd.Stdin != nil {
		contents, _ := io.ReadAll(cmd.Stdin)
		stdin = string(contents)
	}
	r.stdins = append(r.stdins, stdin)

	if r.startErr != nil {
		return nil, r.startErr
	}
	if len(r.processes) == 0 {
		return &fakeProcess{}, nil
	}
	process := r.processes[0]
	r.processes = r.processes[1:]
	return process, nil
}

func (r *fakeCmdRunner) RunComplexCommand(cmd boshsys.Command) (string, string, int, error) {
	return "", "", 0, nil
}

func (r *fakeCmdRunner) RunCommand(cmdName string, args ...string) (string, string, int, error) {
	return "", "", 0, nil
}

func (r *fakeCmdRunner) RunCommandQuietly(cmdName string, args ...string) (string, string, int, error) {
	return "", "", 0, nil
}

func (r *fakeCmdRunner) RunCommandWithInput(input, cmdName string, args ...string) (string, string, int, error) {
	return "", "", 0, nil
}

func (r *fakeCmdRunner) CommandExists(cmdName string) bool {
	return r.commandExists
}
