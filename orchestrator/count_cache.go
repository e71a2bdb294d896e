package orchestrator

//counterfeiter:generate -o fakes/fake_counter.go . Counter
type Counter interface {
	CountArtifacts() (int, error)
}

// CountCache holds the per-run artifact count for each tier. A tier is listed
// at most once per run; deletions and uploads are folded in as logical
// adjustments so the expensive listing never happens twice for the same tier
// unless a caller explicitly invalidates it.
type CountCache struct {
	counters map[TierName]Counter
	counts   map[TierName]int
	known    map[TierName]bool
	ledger   *Ledger
	logger   Logger
}

func NewCountCache(counters map[TierName]Counter, ledger *Ledger, logger Logger) *CountCache {
	return &CountCache{
		counters: counters,
		counts:   map[TierName]int{},
		known:    map[TierName]bool{},
		ledger:   ledger,
		logger:   logger,
	}
}

// Count returns the cached occupancy for the tier, listing it on first use.
// A failed listing is recorded as a warning once and the last known value (or
// zero) is cached for the rest of the run, so a persistently failing counter
// is not re-listed and re-warned by every later step. Invalidate forces a
// retry. Counting must never abort the run.
func (c *CountCache) Count(tier TierName) int {
	if c.known[tier] {
		return c.counts[tier]
	}

	counter, found := c.counters[tier]
	if !found {
		return 0
	}

	count, err := counter.CountArtifacts()
	if err != nil {
		c.logger.Warn("count", "failed to count artifacts in %s tier: %v", tier, err)
		c.ledger.AddDetailed("count", SeverityWarning,
			"failed to count artifacts in "+string(tier)+" tier", err.Error())
		c.known[tier] = true
		return c.counts[tier]
	}

	c.counts[tier] = count
	c.known[tier] = true
	c.logger.Debug("count", "%s tier holds %d artifacts", tier, count)
	return count
}

// Adjust applies a signed logical correction after deletions or uploads,
// without re-listing.
func (c *CountCache) Adjust(tier TierName, delta int) {
	c.counts[tier] = c.counts[tier] + delta
	if c.counts[tier] < 0 {
		c.counts[tier] = 0
	}
}

// Invalidate forces the next Count call for the tier to re-list.
func (c *CountCache) Invalidate(tier TierName) {
	c.known[tier] = false
}
