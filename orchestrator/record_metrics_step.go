package orchestrator

type RecordMetricsStep struct {
	recorder MetricsRecorder
	logger   Logger
}

func NewRecordMetricsStep(recorder MetricsRecorder, logger Logger) Step {
	return &RecordMetricsStep{recorder: recorder, logger: logger}
}

// Run appends this run's summary to the shared metrics file. The file is
// contended by overlapping runs, so a failure to record (most likely a lock
// acquisition timeout) is a warning, never a reason to fail the run.
func (s *RecordMetricsStep) Run(session *Session) error {
	if s.recorder == nil {
		return nil
	}

	if err := s.recorder.Record(session.Summary()); err != nil {
		session.Ledger().AddDetailed("metrics", SeverityWarning,
			"failed to record run metrics", err.Error())
		s.logger.Warn("lifecycle", "failed to record run metrics: %v", err)
	}

	return nil
}
