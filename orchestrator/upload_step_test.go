package orchestrator_test

import (
	"fmt"

	"github.com/keepsake-backup/keepsake/orchestrator"
	"github.com/keepsake-backup/keepsake/orchestrator/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UploadStep", func() {
	var (
		uploader     *fakes.FakeUploader
		cloudCounter *fakes.FakeCounter
		logger       *fakes.FakeLogger
		session      *orchestrator.Session
		step         orchestrator.Step
		artifactPath string
		cloudEnabled bool
	)

	BeforeEach(func() {
		uploader = new(fakes.FakeUploader)
		cloudCounter = new(fakes.FakeCounter)
		cloudCounter.CountArtifactsReturns(4, nil)
		logger = new(fakes.FakeLogger)
		artifactPath = "/backups/db-backup-20260831.tgz"
		cloudEnabled = true
	})

	JustBeforeEach(func() {
		session = orchestrator.NewSession(artifactPath, map[orchestrator.TierName]orchestrator.TierPolicy{
			orchestrator.TierCloud: {Name: orchestrator.TierCloud, Enabled: cloudEnabled, MaxArtifacts: 10},
		}, map[orchestrator.TierName]orchestrator.Counter{
			orchestrator.TierCloud: cloudCounter,
		}, logger)
		session.Counts().Count(orchestrator.TierCloud)
		step = orchestrator.NewUploadStep(uploader, logger)
	})

	Context("when the upload is verified", func() {
		BeforeEach(func() {
			uploader.UploadReturns(orchestrator.TransferVerified, nil)
		})

		It("counts the new remote artifact", func() {
			Expect(step.Run(session)).To(Succeed())

			Expect(uploader.UploadArgsForCall(0)).To(Equal(artifactPath))
			Expect(session.Counts().Count(orchestrator.TierCloud)).To(Equal(5))
			Expect(session.TierStatus(orchestrator.TierCloud)).To(Equal(orchestrator.TierStatusOK))
			Expect(session.Ledger().ExitCode()).To(Equal(0))
		})
	})

	Context("when the upload succeeds but cannot be verified", func() {
		BeforeEach(func() {
			uploader.UploadReturns(orchestrator.TransferUnverified, fmt.Errorf("object not listed after 2 attempts"))
		})

		It("still counts the artifact as occupying a slot", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.Counts().Count(orchestrator.TierCloud)).To(Equal(5))
		})

		It("degrades the tier to warning", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.TierStatus(orchestrator.TierCloud)).To(Equal(orchestrator.TierStatusWarning))

			entries := session.Ledger().EntriesFor("cloud")
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Severity).To(Equal(orchestrator.SeverityWarning))
			Expect(entries[0].Details).To(ContainSubstring("not listed"))
		})
	})

	Context("when the upload fails", func() {
		BeforeEach(func() {
			uploader.UploadReturns(orchestrator.TransferFailed, fmt.Errorf("connection refused"))
		})

		It("does not count the artifact", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.Counts().Count(orchestrator.TierCloud)).To(Equal(4))
		})

		It("degrades the tier but lets the run continue", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(session.TierStatus(orchestrator.TierCloud)).To(Equal(orchestrator.TierStatusError))
		})
	})

	Context("when there is no artifact for this run", func() {
		BeforeEach(func() {
			artifactPath = ""
		})

		It("skips uploading and notes rotation-only mode", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(uploader.UploadCallCount()).To(Equal(0))

			entries := session.Ledger().EntriesFor("cloud")
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Severity).To(Equal(orchestrator.SeverityInfo))
		})
	})

	Context("when the cloud tier is inactive", func() {
		BeforeEach(func() {
			cloudEnabled = false
		})

		It("does nothing", func() {
			Expect(step.Run(session)).To(Succeed())
			Expect(uploader.UploadCallCount()).To(Equal(0))
		})
	})
})
