package importer

import (
	"os"
	"path/filepath"
)

// auditLog appends one human-readable line per skip or error so bulk imports
// can be audited after the fact. Write failures are swallowed: a broken log
// must not break the import.
type auditLog struct {
	f *os.File
}

func openAuditLog(logsRoot string) (*auditLog, error) {
	if err := os.MkdirAll(logsRoot, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(logsRoot, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &auditLog{f: f}, nil
}

func (l *auditLog) line(msg string) {
	if l == nil || l.f == nil {
		return
	}
	_, _ = l.f.WriteString(msg + "\n")
}

func (l *auditLog) Close() error {
	if l == nil || l.f == nil {
		return nil
	}
	return l.f.Close()
}
