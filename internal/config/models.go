package config

import "time"

type Config struct {
	Metrics    Metrics
	Logs       Logs
	Query      Query
	Fanout     Fanout
	Remote     Remote
	Credential Credential
	Watch      Watch
	Output     Output
}

type Metrics struct {
	Port int
}

type Logs struct {
	Level   int
	Encoder EncoderType
}

type EncoderType string

const (
	EncoderTypeJson    EncoderType = "json"
	EncoderTypeConsole EncoderType = "console"
)

type Query struct {
	ComputerNames []string
	HoursBack     int
	LegacyNewest  int
	Timeout       time.Duration
}

type Fanout struct {
	Concurrency int
}

type Remote struct {
	Shell string
}

type Credential struct {
	Username string
	Password string
}

// String hides the password, the config is dumped in logs at startup.
func (c Credential) String() string {
	switch {
	case c.Username == "":
		return "current identity"
	case c.Password != "":
		return c.Username + " (password set)"
	default:
		return c.Username + " (no password)"
	}
}

type Watch struct {
	Interval time.Duration
}

type Output struct {
	Format OutputFormat
}

type OutputFormat string

const (
	OutputFormatJson  OutputFormat = "json"
	OutputFormatYaml  OutputFormat = "yaml"
	OutputFormatTable OutputFormat = "table"
)
