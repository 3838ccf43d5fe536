package powershell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/internal/domain/repo"
)

var ErrTimeout = errors.New("remote call timed out")

// Client implements repo.Remote by running PowerShell scripts.
type Client struct {
	runner  Runner
	timeout time.Duration
}

var _ repo.Remote = Client{}

// NewClient returns a client bounding every call to timeout. A zero timeout means no bound.
func NewClient(runner Runner, timeout time.Duration) Client {
	return Client{
		runner:  runner,
		timeout: timeout,
	}
}

func (c Client) ListChannels(ctx context.Context, host string, cred *entity.Credential) ([]entity.LogChannel, error) {
	output, err := c.run(ctx, "list_channels", scriptListChannels, host, cred, nil)
	if err != nil {
		return nil, err
	}

	channels, err := decodeList[logChannel](output)
	if err != nil {
		return nil, repo.NewQueryError(err, repo.FailureUnknown, host)
	}

	ret := make([]entity.LogChannel, 0, len(channels))
	for _, channel := range channels {
		ret = append(ret, mapChannelToEntity(channel))
	}

	return ret, nil
}

func (c Client) QueryEvents(ctx context.Context, host string, cred *entity.Credential, filter entity.EventFilter) ([]entity.EventRecord, error) {
	levels := make([]string, 0, len(filter.Levels))
	for _, level := range filter.Levels {
		levels = append(levels, strconv.Itoa(int(level)))
	}

	env := []string{
		envLogNames + "=" + strings.Join(filter.LogNames, "\n"),
		envLevels + "=" + strings.Join(levels, ","),
		envStart + "=" + filter.StartTime.UTC().Format(time.RFC3339Nano),
	}

	output, err := c.run(ctx, "query_events", scriptQueryEvents, host, cred, env)
	if err != nil {
		return nil, err
	}

	records, err := decodeList[eventRecord](output)
	if err != nil {
		return nil, repo.NewQueryError(err, repo.FailureUnknown, host)
	}

	ret := make([]entity.EventRecord, 0, len(records))
	for _, record := range records {
		ret = append(ret, mapEventToEntity(record))
	}

	return ret, nil
}

func (c Client) ReadEntries(ctx context.Context, host string, cred *entity.Credential, filter entity.LegacyFilter) ([]entity.LegacyEntry, error) {
	env := []string{
		envLogName + "=" + filter.LogName,
		envEntryType + "=" + filter.EntryType,
		envNewest + "=" + strconv.Itoa(filter.Newest),
	}

	output, err := c.run(ctx, "read_entries", scriptReadLegacy, host, cred, env)
	if err != nil {
		return nil, err
	}

	entries, err := decodeList[legacyEntry](output)
	if err != nil {
		return nil, repo.NewQueryError(err, repo.FailureUnknown, host)
	}

	ret := make([]entity.LegacyEntry, 0, len(entries))
	for _, entry := range entries {
		ret = append(ret, mapLegacyToEntity(entry))
	}

	return ret, nil
}

func (c Client) run(ctx context.Context, call string, script string, host string, cred *entity.Credential, env []string) ([]byte, error) {
	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc

		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	env = append(env, envHost+"="+host)

	// Credentials only travel through the environment
	if cred != nil {
		env = append(env, envUser+"="+cred.Username, envPassword+"="+cred.Password)
	}

	logger := logr.FromContextOrDiscard(ctx).WithValues("host", host, "call", call)
	logger.V(2).Info("Running remote call")

	start := time.Now()
	stdout, stderr, err := c.runner.Run(callCtx, script, env)

	logger.V(2).Info("Remote call done", "duration", time.Since(start).String(), "stdout", len(stdout), "stderr", len(stderr))

	if err == nil {
		return stdout, nil
	}

	// Deadline reached while the caller is still waiting: the host is hanging
	if ctx.Err() == nil && callCtx.Err() != nil {
		return nil, repo.NewQueryError(fmt.Errorf("%w after %s", ErrTimeout, c.timeout), repo.FailureUnknown, host)
	}

	if ctx.Err() != nil {
		return nil, repo.NewQueryError(ctx.Err(), repo.FailureUnknown, host)
	}

	message := strings.TrimSpace(string(stderr))
	if message != "" {
		err = fmt.Errorf("%w: %s", err, message)
	}

	return nil, repo.NewQueryError(err, ClassifyFailure(message), host)
}
