package orchestrator

import (
	"fmt"
	"os"
)

type PrepareTierStep struct {
	tier   TierName
	logger Logger
}

func NewPrepareTierStep(tier TierName, logger Logger) Step {
	return &PrepareTierStep{tier: tier, logger: logger}
}

// Run verifies the tier can be worked on at all. A disabled tier is an
// expected skip; an uncreatable local tier directory is a hard error for
// this tier only, and the workflow moves on to the next tier.
func (s *PrepareTierStep) Run(session *Session) error {
	policy := session.PolicyFor(s.tier)

	if !policy.Enabled {
		session.MarkTierSkipped(s.tier)
		session.Ledger().AddInfo(string(s.tier), "%s tier is disabled, skipping", s.tier)
		s.logger.Info("lifecycle", "%s tier is disabled, skipping", s.tier)
		return nil
	}

	if s.tier == TierCloud {
		// nothing to create; reachability is probed as an upload precondition
		return nil
	}

	if err := os.MkdirAll(policy.Location, 0700); err != nil {
		session.MarkTierFailed(s.tier)
		session.Ledger().AddDetailed(string(s.tier), SeverityCritical,
			fmt.Sprintf("cannot access %s tier directory %s", s.tier, policy.Location), err.Error())
		return NewTierAccessError(
			fmt.Sprintf("cannot access %s tier directory %s: %v", s.tier, policy.Location, err))
	}

	return nil
}
