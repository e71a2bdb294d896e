package orchestrator

type CountStep struct {
	tier   TierName
	logger Logger
}

func NewCountStep(tier TierName, logger Logger) Step {
	return &CountStep{tier: tier, logger: logger}
}

// Run primes the count cache for the tier. The listing happens here, once;
// everything after this point works on logical adjustments.
func (s *CountStep) Run(session *Session) error {
	if !session.TierActive(s.tier) {
		return nil
	}

	count := session.Counts().Count(s.tier)
	s.logger.Info("lifecycle", "%s tier occupancy: %d/%d", s.tier, count, session.PolicyFor(s.tier).MaxArtifacts)
	return nil
}
