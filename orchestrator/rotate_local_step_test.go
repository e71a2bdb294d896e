package orchestrator_test

import (
	"fmt"

	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/orchestrator/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RotateLocalStep", func() {
	var (
		deleter *fakes.FakeLocalDeleter
		counter *fakes.FakeCounter
		logger  *fakes.FakeLogger
		session *orchestrator.Session
		step    orchestrator.Step
		count   int
	)

	BeforeEach(func() {
		deleter = new(fakes.FakeLocalDeleter)
		counter = new(fakes.FakeCounter)
		logger = new(fakes.FakeLogger)
		count = 7
	})

	JustBeforeEach(func() {
		counter.CountArtifactsReturns(count, nil)
		session = orchestrator.NewSession("", map[orchestrator.TierName]orchestrator.TierPolicy{
			orchestrator.TierPrimary: {
				Name:         orchestrator.TierPrimary,
				Enabled:      true,
				Location:     "/backups",
				MaxArtifacts: 5,
				Pattern:      "*-backup-*",
				SidecarGlobs: []string{"*.sha256"},
			},
		}, map[orchestrator.TierName]orchestrator.Counter{
			orchestrator.TierPrimary: counter,
		}, logger)
		session.Counts().Count(orchestrator.TierPrimary)
		step = orchestrator.NewRotateLocalStep(orchestrator.TierPrimary, deleter, logger)
	})

	Context("when the tier exceeds its maximum", func() {
		BeforeEach(func() {
			deleter.DeleteOldestReturns(2, nil)
		})

		It("deletes exactly the excess, oldest first", func() {
			Expect(step.Run(session)).To(Succeed())

			Expect(deleter.DeleteOldestCallCount()).To(Equal(1))
			dir, pattern, sidecarGlobs, n := deleter.DeleteOldestArgsForCall(0)
			Expect(dir).To(Equal("/backups"))
			Expect(pattern).To(Equal("*-backup-*"))
			Expect(sidecarGlobs).To(Equal([]string{"*.sha256"}))
			Expect(n).To(Equal(2))
		})

		It("adjusts the cached count by the number deleted", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.Counts().Count(orchestrator.TierPrimary)).To(Equal(5))
		})
	})

	Context("when the tier is at its maximum", func() {
		BeforeEach(func() {
			count = 5
		})

		It("deletes nothing", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(deleter.DeleteOldestCallCount()).To(Equal(0))
		})
	})

	Context("when some deletions fail", func() {
		BeforeEach(func() {
			deleter.DeleteOldestReturns(1, fmt.Errorf("failed to delete db-backup-1.tgz"))
		})

		It("adjusts the count only by what was actually deleted", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.Counts().Count(orchestrator.TierPrimary)).To(Equal(6))
		})

		It("records a warning and degrades the tier", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.TierStatus(orchestrator.TierPrimary)).To(Equal(orchestrator.TierStatusWarning))
			Expect(session.Ledger().ExitCode()).To(Equal(1))
		})
	})
})

var _ = Describe("RotateRemoteStep", func() {
	var (
		deleter *fakes.FakeRemoteDeleter
		counter *fakes.FakeCounter
		logger  *fakes.FakeLogger
		session *orchestrator.Session
		step    orchestrator.Step
	)

	BeforeEach(func() {
		deleter = new(fakes.FakeRemoteDeleter)
		counter = new(fakes.FakeCounter)
		counter.CountArtifactsReturns(12, nil)
		logger = new(fakes.FakeLogger)

		session = orchestrator.NewSession("", map[orchestrator.TierName]orchestrator.TierPolicy{
			orchestrator.TierCloud: {Name: orchestrator.TierCloud, Enabled: true, MaxArtifacts: 10},
		}, map[orchestrator.TierName]orchestrator.Counter{
			orchestrator.TierCloud: counter,
		}, logger)
		session.Counts().Count(orchestrator.TierCloud)
		step = orchestrator.NewRotateRemoteStep(deleter, logger)
	})

	It("asks the remote deleter for exactly the excess", func() {
		deleter.DeleteOldestReturns(2, nil)

		Expect(step.Run(session)).To(Succeed())
		Expect(deleter.DeleteOldestArgsForCall(0)).To(Equal(2))
		Expect(session.Counts().Count(orchestrator.TierCloud)).To(Equal(10))
	})

	Context("when the remote rotation fails outright", func() {
		BeforeEach(func() {
			deleter.DeleteOldestReturns(0, fmt.Errorf("listing failed"))
		})

		It("leaves the count untouched and records a warning", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.Counts().Count(orchestrator.TierCloud)).To(Equal(12))
			Expect(session.TierStatus(orchestrator.TierCloud)).To(Equal(orchestrator.TierStatusWarning))
		})
	})
})
