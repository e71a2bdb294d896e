package orchestrator

type RotateLocalStep struct {
	tier    TierName
	deleter LocalDeleter
	logger  Logger
}

func NewRotateLocalStep(tier TierName, deleter LocalDeleter, logger Logger) Step {
	return &RotateLocalStep{tier: tier, deleter: deleter, logger: logger}
}

// Run enforces the tier's retention maximum by deleting the oldest excess
// artifacts with their sidecars. The count cache is adjusted by the number of
// artifacts actually deleted, so a partial failure cannot drift the cached
// count below the on-disk truth.
func (s *RotateLocalStep) Run(session *Session) error {
	if !session.TierActive(s.tier) {
		return nil
	}

	policy := session.PolicyFor(s.tier)
	excess := Excess(session.Counts().Count(s.tier), policy.MaxArtifacts)
	if excess == 0 {
		s.logger.Debug("lifecycle", "%s tier within retention maximum, nothing to rotate", s.tier)
		return nil
	}

	s.logger.Info("lifecycle", "rotating %s tier: deleting %d oldest artifacts", s.tier, excess)
	deleted, err := s.deleter.DeleteOldest(policy.Location, policy.Pattern, policy.SidecarGlobs, excess)
	session.Counts().Adjust(s.tier, -deleted)

	if err != nil {
		session.Ledger().AddDetailed(string(s.tier), SeverityWarning,
			"rotation of "+string(s.tier)+" tier partially failed", err.Error())
		session.DegradeTier(s.tier, TierStatusWarning)
		s.logger.Warn("lifecycle", "rotation of %s tier partially failed: %v", s.tier, err)
	}

	return nil
}
