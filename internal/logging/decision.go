package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"
)

const maxURLLen = 2048

// Decision is written as a single JSON object per rewrite call.
type Decision struct {
	Timestamp  time.Time `json:"ts"`
	Input      string    `json:"input"`
	Output     string    `json:"output,omitempty"`
	Outcome    string    `json:"outcome"`
	Rule       string    `json:"rule,omitempty"`
	DurationUS int64     `json:"duration_us"`
	Error      string    `json:"error,omitempty"`
}

type DecisionLogger struct {
	w io.Writer
}

func NewDecisionLogger(w io.Writer) *DecisionLogger {
	return &DecisionLogger{w: w}
}

func OpenDecisionLog(path string) (*DecisionLogger, func() error, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewDecisionLogger(file), file.Close, nil
}

func (l *DecisionLogger) Write(decision Decision) error {
	decision.Input = truncate(decision.Input)
	decision.Output = truncate(decision.Output)

	data, err := json.Marshal(decision)
	if err != nil {
		return err
	}
	_, err = l.w.Write(append(data, '\n'))
	return err
}

func truncate(value string) string {
	if len(value) <= maxURLLen {
		return value
	}
	return value[:maxURLLen]
}
