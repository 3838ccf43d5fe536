package entity

import (
	"time"
)

// EventRecord is the common shape of an event whatever the path it was read from.
type EventRecord struct {
	HostName         string    `json:"hostName" yaml:"hostName"`
	TimeCreated      time.Time `json:"timeCreated" yaml:"timeCreated"`
	ProviderName     string    `json:"providerName" yaml:"providerName"`
	LogName          string    `json:"logName" yaml:"logName"`
	EventID          int       `json:"eventId" yaml:"eventId"`
	LevelDisplayName string    `json:"levelDisplayName" yaml:"levelDisplayName"`
	Message          string    `json:"message" yaml:"message"`
}

// LogChannel describes an event log available on a host.
type LogChannel struct {
	Name        string
	Type        string
	Isolation   string
	RecordCount int64
}

// LegacyEntry is an entry as returned by the legacy event log API.
type LegacyEntry struct {
	MachineName   string
	TimeGenerated time.Time
	Source        string
	EventID       int
	EntryType     string
	Message       string
}

// Credential is passed through to the remote APIs. A nil *Credential means the current identity.
type Credential struct {
	Username string
	Password string
}

func (c Credential) String() string {
	return c.Username
}

type Level int

const (
	LevelCritical Level = 1
	LevelError    Level = 2
)

// EventFilter is the query sent to the modern API.
type EventFilter struct {
	LogNames  []string
	Levels    []Level
	StartTime time.Time
}

// LegacyFilter is the query sent to the legacy API.
type LegacyFilter struct {
	LogName   string
	EntryType string
	Newest    int
}
