package orchestrator

type TierName string

const (
	TierPrimary   TierName = "primary"
	TierSecondary TierName = "secondary"
	TierCloud     TierName = "cloud"
)

// AllTiers is the fixed processing order: local tiers first, cloud last.
var AllTiers = []TierName{TierPrimary, TierSecondary, TierCloud}

type TierStatus string

const (
	TierStatusOK       TierStatus = "ok"
	TierStatusWarning  TierStatus = "warning"
	TierStatusError    TierStatus = "error"
	TierStatusDisabled TierStatus = "disabled"
)

// TierPolicy is the per-tier slice of configuration the lifecycle needs:
// where the tier lives, whether it participates, and how many artifacts it
// may retain.
type TierPolicy struct {
	Name         TierName
	Enabled      bool
	Location     string
	MaxArtifacts int
	Pattern      string
	SidecarGlobs []string
}

type TierReport struct {
	Tier     TierName
	Occupied int
	Max      int
	Status   TierStatus
}

type RunSummary struct {
	Reports       []TierReport
	BytesCopied   int64
	FinalSeverity Severity
}
