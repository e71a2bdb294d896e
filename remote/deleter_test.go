package remote_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/keepsake-backup/keepsake/orchestrator/fakes"
	"github.com/keepsake-backup/keepsake/remote"
	remotefakes "github.com/keepsake-backup/keepsake/remote/fakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BatchDeleter", func() {
	var (
		store   *remotefakes.FakeStore
		deleter *remote.BatchDeleter
		now     time.Time
	)

	newDeleter := func(batchSize int) *remote.BatchDeleter {
		return remote.NewBatchDeleter(store, remote.BatchDeleterConfig{
			Pattern:         "*-backup-*",
			SidecarGlobs:    []string{"*.sha256", "*.metadata", "*.metadata.sha256"},
			BatchSize:       batchSize,
			ListTimeout:     time.Second,
			DeleteTimeout:   time.Second,
			InterBatchPause: time.Millisecond,
		}, clock.NewClock(), new(fakes.FakeLogger))
	}

	BeforeEach(func() {
		store = new(remotefakes.FakeStore)
		deleter = newDeleter(20)
		now = time.Now()
	})

	Context("with a handful of artifacts and companions", func() {
		BeforeEach(func() {
			store.ListStub = func(_ context.Context, pattern string) ([]remote.Object, error) {
				switch {
				case pattern == "*-backup-*":
					return []remote.Object{
						{Key: "db-backup-2.tgz", ModTime: now.Add(-2 * time.Hour)},
						{Key: "db-backup-1.tgz", ModTime: now.Add(-3 * time.Hour)},
						{Key: "db-backup-1.tgz.sha256", ModTime: now.Add(-3 * time.Hour)},
						{Key: "db-backup-3.tgz", ModTime: now.Add(-1 * time.Hour)},
					}, nil
				case pattern == "db-backup-1.tgz*":
					return []remote.Object{
						{Key: "db-backup-1.tgz"},
						{Key: "db-backup-1.tgz.sha256"},
						{Key: "db-backup-1.tgz.partial"},
					}, nil
				default:
					return nil, nil
				}
			}
			store.ExistsStub = func(_ context.Context, key string) (bool, error) {
				return key == "db-backup-1.tgz.metadata", nil
			}
		})

		It("expands the oldest artifacts to their full deletion groups", func() {
			deleted, err := deleter.DeleteOldest(2)

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(2))

			Expect(store.DeleteCallCount()).To(Equal(1))
			_, keys := store.DeleteArgsForCall(0)
			Expect(keys).To(ConsistOf(
				"db-backup-1.tgz",
				"db-backup-1.tgz.sha256",
				"db-backup-1.tgz.metadata",
				"db-backup-1.tgz.metadata.sha256",
				"db-backup-1.tgz.partial",
				"db-backup-2.tgz",
				"db-backup-2.tgz.sha256",
			))
			Expect(keys).NotTo(ContainElement("db-backup-3.tgz"))
		})

		It("caps n at the number of remote artifacts", func() {
			deleted, err := deleter.DeleteOldest(10)

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(3))
		})
	})

	Context("with enough objects to need several batches", func() {
		BeforeEach(func() {
			store.ListStub = func(_ context.Context, pattern string) ([]remote.Object, error) {
				if pattern != "*-backup-*" {
					return nil, nil
				}
				var objects []remote.Object
				for i := 0; i < 25; i++ {
					objects = append(objects, remote.Object{
						Key:     fmt.Sprintf("db-backup-%02d.tgz", i),
						ModTime: now.Add(time.Duration(i) * time.Minute),
					})
				}
				return objects, nil
			}
			store.ExistsReturns(false, nil)
		})

		It("splits the deletion set into bounded batches", func() {
			deleted, err := deleter.DeleteOldest(25)

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(25))

			Expect(store.DeleteCallCount()).To(Equal(3))
			_, first := store.DeleteArgsForCall(0)
			_, second := store.DeleteArgsForCall(1)
			_, third := store.DeleteArgsForCall(2)
			Expect(first).To(HaveLen(20))
			Expect(second).To(HaveLen(20))
			Expect(third).To(HaveLen(10))
		})

		It("keeps deleting later batches when one fails", func() {
			store.DeleteReturnsOnCall(0, fmt.Errorf("throttled"))

			deleted, err := deleter.DeleteOldest(25)

			Expect(err).To(MatchError(ContainSubstring("1 of 3 delete batches failed")))
			Expect(store.DeleteCallCount()).To(Equal(3))

			// the first batch held ten artifacts and their checksums
			Expect(deleted).To(Equal(15))
		})
	})

	Context("when the initial listing fails", func() {
		BeforeEach(func() {
			store.ListReturns(nil, fmt.Errorf("access denied"))
		})

		It("aborts without deleting anything", func() {
			deleted, err := deleter.DeleteOldest(3)

			Expect(err).To(MatchError(ContainSubstring("aborting rotation")))
			Expect(deleted).To(Equal(0))
			Expect(store.DeleteCallCount()).To(Equal(0))
		})
	})

	Context("when the deletion set comes back empty", func() {
		BeforeEach(func() {
			store.ListReturns(nil, nil)
		})

		It("treats it as a failure rather than a silent no-op", func() {
			deleted, err := deleter.DeleteOldest(3)

			Expect(err).To(MatchError(ContainSubstring("no remote objects identified for deletion")))
			Expect(deleted).To(Equal(0))
			Expect(store.DeleteCallCount()).To(Equal(0))
		})
	})

	It("orders deletions oldest first with lexical tie-breaks", func() {
		store.ListStub = func(_ context.Context, pattern string) ([]remote.Object, error) {
			if pattern != "*-backup-*" {
				return nil, nil
			}
			return []remote.Object{
				{Key: "db-backup-b.tgz", ModTime: now},
				{Key: "db-backup-a.tgz", ModTime: now},
				{Key: "db-backup-old.tgz", ModTime: now.Add(-time.Hour)},
			}, nil
		}
		store.ExistsReturns(false, nil)

		_, err := deleter.DeleteOldest(2)
		Expect(err).NotTo(HaveOccurred())

		_, keys := store.DeleteArgsForCall(0)
		bases := []string{}
		for _, key := range keys {
			if !strings.HasSuffix(key, ".sha256") {
				bases = append(bases, key)
			}
		}
		Expect(bases).To(Equal([]string{"db-backup-old.tgz", "db-backup-a.tgz"}))
	})
})

var _ = Describe("Counter", func() {
	var store *remotefakes.FakeStore

	BeforeEach(func() {
		store = new(remotefakes.FakeStore)
	})

	It("counts remote artifacts excluding sidecars", func() {
		store.ListReturns([]remote.Object{
			{Key: "db-backup-1.tgz"},
			{Key: "db-backup-1.tgz.sha256"},
			{Key: "db-backup-2.tgz"},
		}, nil)

		count, err := remote.NewCounter(store, "*-backup-*", []string{"*.sha256"}, time.Second).CountArtifacts()

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(2))
	})

	It("propagates listing failures", func() {
		store.ListReturns(nil, fmt.Errorf("unreachable"))

		_, err := remote.NewCounter(store, "*", nil, time.Second).CountArtifacts()
		Expect(err).To(HaveOccurred())
	})
})
