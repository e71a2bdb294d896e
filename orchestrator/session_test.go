package orchestrator_test

import (
	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/orchestrator/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	var (
		session  *orchestrator.Session
		policies map[orchestrator.TierName]orchestrator.TierPolicy
		counters map[orchestrator.TierName]orchestrator.Counter
		counter  *fakes.FakeCounter
	)

	BeforeEach(func() {
		counter = new(fakes.FakeCounter)
		counter.CountArtifactsReturns(3, nil)
		policies = map[orchestrator.TierName]orchestrator.TierPolicy{
			orchestrator.TierPrimary: {
				Name: orchestrator.TierPrimary, Enabled: true, Location: "/backups", MaxArtifacts: 5,
			},
			orchestrator.TierSecondary: {
				Name: orchestrator.TierSecondary, Enabled: false,
			},
			orchestrator.TierCloud: {
				Name: orchestrator.TierCloud, Enabled: true, MaxArtifacts: 10,
			},
		}
		counters = map[orchestrator.TierName]orchestrator.Counter{
			orchestrator.TierPrimary: counter,
			orchestrator.TierCloud:   counter,
		}
		session = orchestrator.NewSession("/backups/db-backup-1.tgz", policies, counters, new(fakes.FakeLogger))
	})

	Describe("TierActive", func() {
		It("is false for a disabled tier", func() {
			Expect(session.TierActive(orchestrator.TierSecondary)).To(BeFalse())
		})

		It("is true for an enabled, untouched tier", func() {
			Expect(session.TierActive(orchestrator.TierPrimary)).To(BeTrue())
		})

		It("is false once the tier is skipped", func() {
			session.MarkTierSkipped(orchestrator.TierPrimary)
			Expect(session.TierActive(orchestrator.TierPrimary)).To(BeFalse())
		})

		It("is false once the tier has hard-failed", func() {
			session.MarkTierFailed(orchestrator.TierPrimary)
			Expect(session.TierActive(orchestrator.TierPrimary)).To(BeFalse())
		})
	})

	Describe("DegradeTier", func() {
		It("reports ok for an enabled tier by default", func() {
			Expect(session.TierStatus(orchestrator.TierPrimary)).To(Equal(orchestrator.TierStatusOK))
		})

		It("reports disabled for a disabled tier", func() {
			Expect(session.TierStatus(orchestrator.TierSecondary)).To(Equal(orchestrator.TierStatusDisabled))
		})

		It("only ever degrades", func() {
			session.DegradeTier(orchestrator.TierPrimary, orchestrator.TierStatusWarning)
			Expect(session.TierStatus(orchestrator.TierPrimary)).To(Equal(orchestrator.TierStatusWarning))

			session.DegradeTier(orchestrator.TierPrimary, orchestrator.TierStatusError)
			Expect(session.TierStatus(orchestrator.TierPrimary)).To(Equal(orchestrator.TierStatusError))

			session.DegradeTier(orchestrator.TierPrimary, orchestrator.TierStatusWarning)
			Expect(session.TierStatus(orchestrator.TierPrimary)).To(Equal(orchestrator.TierStatusError))
		})

		It("marks a hard-failed tier as errored", func() {
			session.MarkTierFailed(orchestrator.TierPrimary)
			Expect(session.TierStatus(orchestrator.TierPrimary)).To(Equal(orchestrator.TierStatusError))
		})
	})

	Describe("Summary", func() {
		It("reports every tier in processing order", func() {
			summary := session.Summary()

			Expect(summary.Reports).To(HaveLen(3))
			Expect(summary.Reports[0].Tier).To(Equal(orchestrator.TierPrimary))
			Expect(summary.Reports[1].Tier).To(Equal(orchestrator.TierSecondary))
			Expect(summary.Reports[2].Tier).To(Equal(orchestrator.TierCloud))
		})

		It("takes occupancy from the count cache for enabled tiers only", func() {
			summary := session.Summary()

			Expect(summary.Reports[0].Occupied).To(Equal(3))
			Expect(summary.Reports[1].Occupied).To(Equal(0))
		})

		It("carries the bytes copied and the run severity", func() {
			session.AddBytesCopied(2048)
			session.Ledger().AddWarning("cloud", "something")

			summary := session.Summary()

			Expect(summary.BytesCopied).To(Equal(int64(2048)))
			Expect(summary.FinalSeverity).To(Equal(orchestrator.SeverityWarning))
		})
	})
})
