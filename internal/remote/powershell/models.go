package powershell

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
)

type logChannel struct {
	LogName      string `json:"LogName"`
	LogType      string `json:"LogType"`
	LogIsolation string `json:"LogIsolation"`
	RecordCount  *int64 `json:"RecordCount"`
}

type eventRecord struct {
	MachineName      string    `json:"MachineName"`
	TimeCreated      time.Time `json:"TimeCreated"`
	ProviderName     string    `json:"ProviderName"`
	LogName          string    `json:"LogName"`
	ID               int       `json:"Id"`
	LevelDisplayName string    `json:"LevelDisplayName"`
	Message          string    `json:"Message"`
}

type legacyEntry struct {
	MachineName   string    `json:"MachineName"`
	TimeGenerated time.Time `json:"TimeGenerated"`
	Source        string    `json:"Source"`
	EventID       int       `json:"EventID"`
	EntryType     string    `json:"EntryType"`
	Message       string    `json:"Message"`
}

func mapChannelToEntity(c logChannel) entity.LogChannel {
	ret := entity.LogChannel{
		Name:      c.LogName,
		Type:      c.LogType,
		Isolation: c.LogIsolation,
	}

	// Logs never written to report no count
	if c.RecordCount != nil {
		ret.RecordCount = *c.RecordCount
	}

	return ret
}

func mapEventToEntity(e eventRecord) entity.EventRecord {
	return entity.EventRecord{
		HostName:         e.MachineName,
		TimeCreated:      e.TimeCreated,
		ProviderName:     e.ProviderName,
		LogName:          e.LogName,
		EventID:          e.ID,
		LevelDisplayName: e.LevelDisplayName,
		Message:          e.Message,
	}
}

func mapLegacyToEntity(e legacyEntry) entity.LegacyEntry {
	return entity.LegacyEntry{
		MachineName:   e.MachineName,
		TimeGenerated: e.TimeGenerated,
		Source:        e.Source,
		EventID:       e.EventID,
		EntryType:     e.EntryType,
		Message:       e.Message,
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeList decodes the JSON array written by a script. No output at all is an empty list.
func decodeList[T any](output []byte) ([]T, error) {
	data := bytes.TrimSpace(bytes.TrimPrefix(output, utf8BOM))
	if len(data) == 0 {
		return nil, nil
	}

	ret := []T{}

	err := json.Unmarshal(data, &ret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode script output: %w", err)
	}

	return ret, nil
}
