package orchestrator_test

import (
	"fmt"

	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/orchestrator/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CountCache", func() {
	var (
		primaryCounter *fakes.FakeCounter
		cloudCounter   *fakes.FakeCounter
		ledger         *orchestrator.Ledger
		logger         *fakes.FakeLogger
		cache          *orchestrator.CountCache
	)

	BeforeEach(func() {
		primaryCounter = new(fakes.FakeCounter)
		cloudCounter = new(fakes.FakeCounter)
		ledger = orchestrator.NewLedger()
		logger = new(fakes.FakeLogger)
		cache = orchestrator.NewCountCache(map[orchestrator.TierName]orchestrator.Counter{
			orchestrator.TierPrimary: primaryCounter,
			orchestrator.TierCloud:   cloudCounter,
		}, ledger, logger)
	})

	It("lists a tier at most once per run", func() {
		primaryCounter.CountArtifactsReturns(7, nil)

		Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(7))
		Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(7))
		Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(7))

		Expect(primaryCounter.CountArtifactsCallCount()).To(Equal(1))
	})

	It("returns zero for a tier with no counter", func() {
		Expect(cache.Count(orchestrator.TierSecondary)).To(Equal(0))
	})

	Context("when the listing fails", func() {
		BeforeEach(func() {
			primaryCounter.CountArtifactsReturns(0, fmt.Errorf("permission denied"))
		})

		It("records a warning and returns the last known value", func() {
			Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(0))

			entries := ledger.EntriesFor("count")
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Severity).To(Equal(orchestrator.SeverityWarning))
			Expect(entries[0].Details).To(Equal("permission denied"))
		})

		It("does not re-list or warn again within the run", func() {
			cache.Count(orchestrator.TierPrimary)
			cache.Count(orchestrator.TierPrimary)
			cache.Count(orchestrator.TierPrimary)

			Expect(primaryCounter.CountArtifactsCallCount()).To(Equal(1))
			Expect(ledger.EntriesFor("count")).To(HaveLen(1))
		})

		It("retries the listing after an explicit Invalidate", func() {
			cache.Count(orchestrator.TierPrimary)

			cache.Invalidate(orchestrator.TierPrimary)
			primaryCounter.CountArtifactsReturns(4, nil)

			Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(4))
			Expect(primaryCounter.CountArtifactsCallCount()).To(Equal(2))
		})
	})

	Describe("Adjust", func() {
		BeforeEach(func() {
			primaryCounter.CountArtifactsReturns(5, nil)
			cache.Count(orchestrator.TierPrimary)
		})

		It("folds in deletions and uploads without re-listing", func() {
			cache.Adjust(orchestrator.TierPrimary, 1)
			Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(6))

			cache.Adjust(orchestrator.TierPrimary, -2)
			Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(4))

			Expect(primaryCounter.CountArtifactsCallCount()).To(Equal(1))
		})

		It("clamps the count at zero", func() {
			cache.Adjust(orchestrator.TierPrimary, -10)
			Expect(cache.Count(orchestrator.TierPrimary)).To(Equal(0))
		})
	})

	Describe("Invalidate", func() {
		It("forces the next Count to re-list", func() {
			cloudCounter.CountArtifactsReturns(3, nil)
			Expect(cache.Count(orchestrator.TierCloud)).To(Equal(3))

			cache.Invalidate(orchestrator.TierCloud)
			cloudCounter.CountArtifactsReturns(9, nil)

			Expect(cache.Count(orchestrator.TierCloud)).To(Equal(9))
			Expect(cloudCounter.CountArtifactsCallCount()).To(Equal(2))
		})
	})
})
