package remote_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	"github.com/keepsake-backup/keepsake/orchestrator"
	orchestratorfakes "github.com/keepsake-backup/keepsake/orchestrator/fakes"
	"github.com/keepsake-backup/keepsake/remote"
	"github.com/keepsake-backup/keepsake/remote/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Uploader", func() {
	var (
		tempDir      string
		artifactPath string
		store        *fakes.FakeStore
		verifier     *remote.Verifier
		uploader     *remote.Uploader
		logger       *orchestratorfakes.FakeLogger
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "keepsake-uploader-test")
		Expect(err).NotTo(HaveOccurred())

		artifactPath = filepath.Join(tempDir, "db-backup-1.tgz")
		Expect(os.WriteFile(artifactPath, []byte("backup contents"), 0600)).To(Succeed())

		store = new(fakes.FakeStore)
		verifier = remote.NewVerifier(store, 2, time.Millisecond, time.Second, boshlog.NewLogger(boshlog.LevelNone))
		logger = new(orchestratorfakes.FakeLogger)
		uploader = remote.NewUploader(store, verifier, time.Minute, logger)
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	It("fails without touching the remote when the artifact is missing", func() {
		status, err := uploader.Upload(filepath.Join(tempDir, "missing.tgz"))

		Expect(status).To(Equal(orchestrator.TransferFailed))
		Expect(err).To(HaveOccurred())
		Expect(store.ProbeCallCount()).To(Equal(0))
		Expect(store.CopyCallCount()).To(Equal(0))
	})

	It("fails without touching the remote when the artifact is empty", func() {
		emptyPath := filepath.Join(tempDir, "empty-backup.tgz")
		Expect(os.WriteFile(emptyPath, nil, 0600)).To(Succeed())

		status, err := uploader.Upload(emptyPath)

		Expect(status).To(Equal(orchestrator.TransferFailed))
		Expect(err).To(MatchError(ContainSubstring("is empty")))
		Expect(store.CopyCallCount()).To(Equal(0))
	})

	It("fails when the destination is unreachable", func() {
		store.ProbeReturns(fmt.Errorf("no route to host"))

		status, err := uploader.Upload(artifactPath)

		Expect(status).To(Equal(orchestrator.TransferFailed))
		Expect(err).To(MatchError(ContainSubstring("not reachable")))
		Expect(store.CopyCallCount()).To(Equal(0))
	})

	It("fails when the transfer itself fails", func() {
		store.CopyReturns(fmt.Errorf("connection reset"))

		status, err := uploader.Upload(artifactPath)

		Expect(status).To(Equal(orchestrator.TransferFailed))
		Expect(err).To(HaveOccurred())
	})

	It("reports a verified transfer when the object is listable", func() {
		store.ExistsReturns(true, nil)

		status, err := uploader.Upload(artifactPath)

		Expect(status).To(Equal(orchestrator.TransferVerified))
		Expect(err).NotTo(HaveOccurred())

		_, copiedPath := store.CopyArgsForCall(0)
		Expect(copiedPath).To(Equal(artifactPath))
		_, probedKey := store.ExistsArgsForCall(0)
		Expect(probedKey).To(Equal("db-backup-1.tgz"))
	})

	It("reports an unverified transfer when verification is inconclusive", func() {
		store.ExistsReturns(false, nil)
		store.ListReturns(nil, nil)

		status, err := uploader.Upload(artifactPath)

		Expect(status).To(Equal(orchestrator.TransferUnverified))
		Expect(err).To(MatchError(ContainSubstring("could not confirm")))
	})

	It("reports an unverified transfer when only the fallback listing finds the object", func() {
		store.ExistsReturns(false, nil)
		store.ListReturns([]remote.Object{{Key: "db-backup-1.tgz"}}, nil)

		status, err := uploader.Upload(artifactPath)

		Expect(status).To(Equal(orchestrator.TransferUnverified))
		Expect(err).To(MatchError(ContainSubstring("fallback listing")))
	})

	Context("with verification disabled", func() {
		BeforeEach(func() {
			uploader = remote.NewUploader(store, nil, time.Minute, logger)
		})

		It("reports a successful transfer as verified without probing", func() {
			status, err := uploader.Upload(artifactPath)

			Expect(status).To(Equal(orchestrator.TransferVerified))
			Expect(err).NotTo(HaveOccurred())
			Expect(store.ExistsCallCount()).To(Equal(0))
			Expect(store.ListCallCount()).To(Equal(0))
		})
	})
})
