package orchestrator

import "fmt"

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "info"
	}
}

type LedgerEntry struct {
	Category string
	Severity Severity
	Message  string
	Details  string
}

// Ledger is the append-only record of everything that went wrong (or was
// deliberately skipped) during a run. Entries are never mutated or reordered;
// the final severity is the maximum severity ever appended.
type Ledger struct {
	entries []LedgerEntry
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(entry LedgerEntry) {
	l.entries = append(l.entries, entry)
}

func (l *Ledger) AddInfo(category, message string, args ...interface{}) {
	l.Append(LedgerEntry{Category: category, Severity: SeverityInfo, Message: fmt.Sprintf(message, args...)})
}

func (l *Ledger) AddWarning(category, message string, args ...interface{}) {
	l.Append(LedgerEntry{Category: category, Severity: SeverityWarning, Message: fmt.Sprintf(message, args...)})
}

func (l *Ledger) AddCritical(category, message string, args ...interface{}) {
	l.Append(LedgerEntry{Category: category, Severity: SeverityCritical, Message: fmt.Sprintf(message, args...)})
}

func (l *Ledger) AddDetailed(category string, severity Severity, message, details string) {
	l.Append(LedgerEntry{Category: category, Severity: severity, Message: message, Details: details})
}

func (l *Ledger) Entries() []LedgerEntry {
	entries := make([]LedgerEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *Ledger) EntriesFor(category string) []LedgerEntry {
	var entries []LedgerEntry
	for _, entry := range l.entries {
		if entry.Category == category {
			entries = append(entries, entry)
		}
	}
	return entries
}

func (l *Ledger) FinalSeverity() Severity {
	severity := SeverityInfo
	for _, entry := range l.entries {
		if entry.Severity > severity {
			severity = entry.Severity
		}
	}
	return severity
}

func (l *Ledger) HasCritical() bool {
	return l.FinalSeverity() == SeverityCritical
}

// ExitCode maps the final severity to the process exit code: 0 when the run
// was clean, 1 when warnings were recorded, 2 when anything critical happened.
func (l *Ledger) ExitCode() int {
	switch l.FinalSeverity() {
	case SeverityCritical:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}
