package local_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/keepsake-backup/keepsake/local"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var sidecarGlobs = []string{"*.sha256", "*.metadata", "*.metadata.sha256"}

func createFile(dir, name string, modTime time.Time) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte("contents of "+name), 0600)).To(Succeed())
	Expect(os.Chtimes(path, modTime, modTime)).To(Succeed())
	return path
}

var _ = Describe("ListArtifacts", func() {
	var (
		tempDir string
		now     time.Time
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "keepsake-lister-test")
		Expect(err).NotTo(HaveOccurred())
		now = time.Now()
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	It("returns artifacts oldest first", func() {
		createFile(tempDir, "db-backup-2.tgz", now.Add(-1*time.Hour))
		createFile(tempDir, "db-backup-3.tgz", now)
		createFile(tempDir, "db-backup-1.tgz", now.Add(-2*time.Hour))

		artifacts, err := local.ListArtifacts(tempDir, "*-backup-*", sidecarGlobs)

		Expect(err).NotTo(HaveOccurred())
		Expect(artifacts).To(HaveLen(3))
		Expect(artifacts[0].Name).To(Equal("db-backup-1.tgz"))
		Expect(artifacts[1].Name).To(Equal("db-backup-2.tgz"))
		Expect(artifacts[2].Name).To(Equal("db-backup-3.tgz"))
	})

	It("breaks modification time ties lexically", func() {
		createFile(tempDir, "db-backup-b.tgz", now)
		createFile(tempDir, "db-backup-a.tgz", now)

		artifacts, err := local.ListArtifacts(tempDir, "*-backup-*", sidecarGlobs)

		Expect(err).NotTo(HaveOccurred())
		Expect(artifacts[0].Name).To(Equal("db-backup-a.tgz"))
		Expect(artifacts[1].Name).To(Equal("db-backup-b.tgz"))
	})

	It("excludes sidecar files and non-matching names", func() {
		createFile(tempDir, "db-backup-1.tgz", now)
		createFile(tempDir, "db-backup-1.tgz.sha256", now)
		createFile(tempDir, "db-backup-1.tgz.metadata", now)
		createFile(tempDir, "db-backup-1.tgz.metadata.sha256", now)
		createFile(tempDir, "unrelated.txt", now)

		artifacts, err := local.ListArtifacts(tempDir, "*-backup-*", sidecarGlobs)

		Expect(err).NotTo(HaveOccurred())
		Expect(artifacts).To(HaveLen(1))
		Expect(artifacts[0].Name).To(Equal("db-backup-1.tgz"))
	})

	It("ignores subdirectories", func() {
		Expect(os.Mkdir(filepath.Join(tempDir, "nested-backup-dir"), 0700)).To(Succeed())

		artifacts, err := local.ListArtifacts(tempDir, "*-backup-*", sidecarGlobs)

		Expect(err).NotTo(HaveOccurred())
		Expect(artifacts).To(BeEmpty())
	})

	It("fails when the directory cannot be read", func() {
		_, err := local.ListArtifacts(filepath.Join(tempDir, "missing"), "*", sidecarGlobs)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Sidecars", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "keepsake-sidecar-test")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tempDir)).To(Succeed())
	})

	It("finds every file sharing the artifact's base name", func() {
		artifact := createFile(tempDir, "db-backup-1.tgz", time.Now())
		checksum := createFile(tempDir, "db-backup-1.tgz.sha256", time.Now())
		metadata := createFile(tempDir, "db-backup-1.tgz.metadata", time.Now())
		createFile(tempDir, "db-backup-2.tgz.sha256", time.Now())

		Expect(local.Sidecars(artifact)).To(ConsistOf(checksum, metadata))
	})

	It("is empty for an artifact with no sidecars", func() {
		artifact := createFile(tempDir, "db-backup-1.tgz", time.Now())
		Expect(local.Sidecars(artifact)).To(BeEmpty())
	})
})
