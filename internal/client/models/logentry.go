package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/salesdesk/internal/common"
)

type LogLevel string

const (
	// LogAny disables level filtering.
	LogAny     LogLevel = ""
	LogInfo    LogLevel = "info"
	LogWarning LogLevel = "warning"
	LogError   LogLevel = "error"
)

// ParseLogLevel maps user input to a level; "todos"/"all"/"" mean no filter.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "todos", "all":
		return LogAny, nil
	case "info":
		return LogInfo, nil
	case "warning", "warn":
		return LogWarning, nil
	case "error":
		return LogError, nil
	default:
		return "", fmt.Errorf("%w: unknown log level %q", common.ErrorInvalidInput, s)
	}
}

// LogEntry is a read-only audit record.
type LogEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"data"`
	Level     LogLevel  `json:"nivel"`
	User      string    `json:"usuario"`
	Action    string    `json:"acao"`
	Details   string    `json:"detalhes"`
}

// LogFilter narrows GET /logs. Zero values are not sent.
type LogFilter struct {
	Level  LogLevel
	Start  *time.Time
	End    *time.Time
	Search string
}
