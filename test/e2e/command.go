package e2e

import (
	"bytes"
	"fmt"
	"os"

	"github.com/vladimirvivien/gexe/exec"
)

// Result is what a finished command wrote.
type Result struct {
	Stdout string
	Stderr string
}

// RunCommand runs command to completion, env is added to the current environment.
func RunCommand(command string, env []string) (Result, error) {
	stdout := bytes.NewBufferString("")
	stderr := bytes.NewBufferString("")

	proc := exec.NewProc(command)
	proc.Command().Stdout = stdout
	proc.Command().Stderr = stderr
	proc.Command().Env = append(os.Environ(), env...)

	proc.Start().Wait()

	ret := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	err := proc.Err()
	if err != nil {
		return ret, fmt.Errorf("failed to run command (%w): stdout:%s stderr:%s", err, ret.Stdout, ret.Stderr)
	}

	return ret, nil
}

// Background is a command left running until Stop is called.
type Background struct {
	proc   *exec.Proc
	stderr *bytes.Buffer
}

func StartCommand(command string, env []string) (*Background, error) {
	stderr := bytes.NewBufferString("")

	proc := exec.NewProc(command)
	proc.Command().Stdout = bytes.NewBufferString("")
	proc.Command().Stderr = stderr
	proc.Command().Env = append(os.Environ(), env...)

	proc.Start()

	err := proc.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	return &Background{proc: proc, stderr: stderr}, nil
}

// Stop interrupts the command and waits for it to exit.
func (b *Background) Stop() error {
	err := b.proc.Command().Process.Signal(os.Interrupt)
	if err != nil {
		return fmt.Errorf("failed to interrupt command: %w", err)
	}

	b.proc.Wait()

	err = b.proc.Err()
	if err != nil {
		return fmt.Errorf("command failed (%w): stderr:%s", err, b.stderr.String())
	}

	return nil
}

func BuildBinary(output string) error {
	_, err := RunCommand(fmt.Sprintf("go build -o %s ../../cmd/admin-events", output), nil)

	return err
}
