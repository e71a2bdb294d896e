package orchestrator

import "github.com/dustin/go-humanize"

type SummaryStep struct {
	logger Logger
}

func NewSummaryStep(logger Logger) Step {
	return &SummaryStep{logger: logger}
}

func (s *SummaryStep) Run(session *Session) error {
	summary := session.Summary()

	for _, report := range summary.Reports {
		if report.Status == TierStatusDisabled {
			s.logger.Info("summary", "%s tier: disabled", report.Tier)
			continue
		}
		s.logger.Info("summary", "%s tier: %d/%d artifacts, status %s",
			report.Tier, report.Occupied, report.Max, report.Status)
	}

	if summary.BytesCopied > 0 {
		s.logger.Info("summary", "transferred %s in this run", humanize.Bytes(uint64(summary.BytesCopied)))
	}
	s.logger.Info("summary", "run severity: %s", summary.FinalSeverity)

	return nil
}
