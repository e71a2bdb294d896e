package orchestrator

type RotateRemoteStep struct {
	deleter RemoteDeleter
	logger  Logger
}

func NewRotateRemoteStep(deleter RemoteDeleter, logger Logger) Step {
	return &RotateRemoteStep{deleter: deleter, logger: logger}
}

func (s *RotateRemoteStep) Run(session *Session) error {
	if !session.TierActive(TierCloud) {
		return nil
	}

	policy := session.PolicyFor(TierCloud)
	excess := Excess(session.Counts().Count(TierCloud), policy.MaxArtifacts)
	if excess == 0 {
		s.logger.Debug("lifecycle", "cloud tier within retention maximum, nothing to rotate")
		return nil
	}

	s.logger.Info("lifecycle", "rotating cloud tier: deleting %d oldest remote artifacts", excess)
	deleted, err := s.deleter.DeleteOldest(excess)
	session.Counts().Adjust(TierCloud, -deleted)

	if err != nil {
		session.Ledger().AddDetailed(string(TierCloud), SeverityWarning,
			"remote rotation failed", err.Error())
		session.DegradeTier(TierCloud, TierStatusWarning)
		s.logger.Warn("lifecycle", "remote rotation failed: %v", err)
	}

	return nil
}
