package powershell

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"os"
	"time"
	"unicode/utf16"

	"github.com/vladimirvivien/gexe/exec"
)

// pipeDrainDelay bounds the wait for output once the shell exited, children it left behind may still hold the pipes.
const pipeDrainDelay = 500 * time.Millisecond

// Runner runs a script and returns what it wrote on stdout and stderr.
type Runner interface {
	Run(ctx context.Context, script string, env []string) (stdout []byte, stderr []byte, err error)
}

// ProcRunner starts a new PowerShell process per script.
type ProcRunner struct {
	shell string
}

// NewProcRunner uses shell as executable, it must be found in PATH or be a path without spaces.
func NewProcRunner(shell string) ProcRunner {
	return ProcRunner{shell: shell}
}

func (r ProcRunner) Run(ctx context.Context, script string, env []string) ([]byte, []byte, error) {
	stdout := bytes.NewBufferString("")
	stderr := bytes.NewBufferString("")

	command := fmt.Sprintf("%s -NoProfile -NonInteractive -ExecutionPolicy Bypass -EncodedCommand %s", r.shell, EncodeScript(script))

	proc := exec.NewProc(command)
	proc.Command().Stdout = stdout
	proc.Command().Stderr = stderr
	proc.Command().Env = append(os.Environ(), env...)
	proc.Command().WaitDelay = pipeDrainDelay

	proc.Start()

	err := proc.Err()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start %s: %w", r.shell, err)
	}

	done := make(chan struct{})

	go func() {
		proc.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		process := proc.Command().Process
		if process != nil {
			_ = process.Kill()
		}

		<-done

		return stdout.Bytes(), stderr.Bytes(), ctx.Err()
	}

	err = proc.Err()
	if err != nil {
		return stdout.Bytes(), stderr.Bytes(), fmt.Errorf("%s failed: %w", r.shell, err)
	}

	return stdout.Bytes(), stderr.Bytes(), nil
}

// EncodeScript encodes a script for -EncodedCommand: base64 of its UTF-16LE bytes.
func EncodeScript(script string) string {
	units := utf16.Encode([]rune(script))

	buf := make([]byte, 2*len(units))
	for i, unit := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], unit)
	}

	return base64.StdEncoding.EncodeToString(buf)
}
