package orchestrator

type CopyToSecondaryStep struct {
	copier ArtifactCopier
	logger Logger
}

func NewCopyToSecondaryStep(copier ArtifactCopier, logger Logger) Step {
	return &CopyToSecondaryStep{copier: copier, logger: logger}
}

// Run mirrors the run's artifact and its sidecars onto the secondary tier.
// Failure is recoverable: the primary copy still exists, so a warning is
// recorded and the run continues.
func (s *CopyToSecondaryStep) Run(session *Session) error {
	if !session.TierActive(TierSecondary) {
		return nil
	}
	if session.ArtifactPath() == "" {
		return nil
	}

	bytesCopied, err := s.copier.Copy(session.ArtifactPath())
	if err != nil {
		s.logger.Warn("lifecycle", "failed to copy %s to secondary tier: %v", session.ArtifactPath(), err)
		session.Ledger().AddDetailed(string(TierSecondary), SeverityWarning,
			"failed to copy artifact to secondary tier", err.Error())
		session.DegradeTier(TierSecondary, TierStatusWarning)
		return nil
	}

	session.AddBytesCopied(bytesCopied)
	session.Counts().Adjust(TierSecondary, 1)
	s.logger.Info("lifecycle", "copied %s to secondary tier", session.ArtifactPath())
	return nil
}
