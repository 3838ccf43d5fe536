package common

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/dustin/go-humanize"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/happysysadm/get-administrativeevent/internal/log"
)

const (
	// default ratio from the memlimit pkg
	memLimitRatio = 0.9
)

// SetupSignalHandler returns a context cancelled on the first SIGINT or SIGTERM.
// A second signal exits the process right away.
func SetupSignalHandler(ctx context.Context) context.Context {
	ret, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		logger := log.Logger()

		sig := <-c
		logger.V(1).Info("Signal received to stop, waiting for running hosts", "signal", sig.String())
		cancel()

		sig = <-c
		logger.V(0).Info("Re-receiving stop signal, exit directly", "signal", sig.String())
		os.Exit(1)
	}()

	return ret
}

// SetupRuntime sizes GOMAXPROCS and GOMEMLIMIT to the container limits, when there are some.
func SetupRuntime() error {
	err := SetMaxProcs()
	if err != nil {
		return err
	}

	return SetMemLimit()
}

func SetMaxProcs() error {
	logger := log.Logger()

	// maxprocs uses a logger with parameters: $template, $arg1, $arg2, ... whereas logr has the same signature but different meaning: $msg, $key1, $value1, $key2, $value2, ...
	_, err := maxprocs.Set(maxprocs.Logger(func(msg string, args ...interface{}) {
		logger.V(1).Info(fmt.Sprintf(msg, args...))
	}))
	if err != nil {
		return fmt.Errorf("failed to set max procs: %w", err)
	}

	return nil
}

// SetMemLimit keeps the go default outside of a memory limited cgroup, e.g. on a workstation.
func SetMemLimit() error {
	logger := log.Logger()

	limit, err := memlimit.SetGoMemLimit(memLimitRatio)

	switch {
	case errors.Is(err, memlimit.ErrNoLimit), errors.Is(err, memlimit.ErrNoCgroup), errors.Is(err, memlimit.ErrCgroupsNotSupported):
		logger.V(2).Info("Go memlimit left unset", "reason", err.Error())

		return nil
	case err != nil:
		return fmt.Errorf("failed to set go mem limit: %w", err)
	}

	logger.V(1).Info("Go memlimit configured", "ratio", memLimitRatio, "limit", humanize.IBytes(uint64(limit)))

	return nil
}
