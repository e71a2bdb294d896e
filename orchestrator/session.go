package orchestrator

type TierState int

const (
	TierPending TierState = iota
	TierSkipped
	TierFailed
	TierDone
)

type Session struct {
	artifactPath string
	policies     map[TierName]TierPolicy
	ledger       *Ledger
	counts       *CountCache
	states       map[TierName]TierState
	statuses     map[TierName]TierStatus
	bytesCopied  int64
}

func NewSession(artifactPath string, policies map[TierName]TierPolicy, counters map[TierName]Counter, logger Logger) *Session {
	ledger := NewLedger()
	return &Session{
		artifactPath: artifactPath,
		policies:     policies,
		ledger:       ledger,
		counts:       NewCountCache(counters, ledger, logger),
		states:       map[TierName]TierState{},
		statuses:     map[TierName]TierStatus{},
	}
}

func (session *Session) ArtifactPath() string {
	return session.artifactPath
}

func (session *Session) Ledger() *Ledger {
	return session.ledger
}

func (session *Session) Counts() *CountCache {
	return session.counts
}

func (session *Session) PolicyFor(tier TierName) TierPolicy {
	return session.policies[tier]
}

func (session *Session) MarkTierSkipped(tier TierName) {
	session.states[tier] = TierSkipped
}

func (session *Session) MarkTierFailed(tier TierName) {
	session.states[tier] = TierFailed
	session.DegradeTier(tier, TierStatusError)
}

// TierActive reports whether steps for the tier should still run: the tier is
// enabled and has not been skipped or hard-failed earlier in the run.
func (session *Session) TierActive(tier TierName) bool {
	if !session.policies[tier].Enabled {
		return false
	}
	state := session.states[tier]
	return state != TierSkipped && state != TierFailed
}

// DegradeTier lowers a tier's reported status. Status only ever degrades
// within a run: ok -> warning -> error.
func (session *Session) DegradeTier(tier TierName, status TierStatus) {
	current := session.statuses[tier]
	if current == TierStatusError {
		return
	}
	if current == TierStatusWarning && status != TierStatusError {
		return
	}
	session.statuses[tier] = status
}

func (session *Session) TierStatus(tier TierName) TierStatus {
	if !session.policies[tier].Enabled {
		return TierStatusDisabled
	}
	if status, found := session.statuses[tier]; found {
		return status
	}
	return TierStatusOK
}

func (session *Session) AddBytesCopied(bytes int64) {
	session.bytesCopied = session.bytesCopied + bytes
}

func (session *Session) BytesCopied() int64 {
	return session.bytesCopied
}

// Summary snapshots the per-tier occupancy and status along with the run's
// final severity. Occupancy comes from the count cache, so building the
// summary never triggers a fresh listing for a tier counted earlier.
func (session *Session) Summary() RunSummary {
	summary := RunSummary{
		BytesCopied:   session.bytesCopied,
		FinalSeverity: session.ledger.FinalSeverity(),
	}
	for _, tier := range AllTiers {
		policy := session.policies[tier]
		report := TierReport{
			Tier:   tier,
			Max:    policy.MaxArtifacts,
			Status: session.TierStatus(tier),
		}
		if policy.Enabled {
			report.Occupied = session.counts.Count(tier)
		}
		summary.Reports = append(summary.Reports, report)
	}
	return summary
}
