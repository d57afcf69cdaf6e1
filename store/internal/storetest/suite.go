// Package storetest contains a generic behavioral test suite for store.Store
// implementations.
package storetest

import (
	"context"
	"sync"
	"time"

	"github.com/dogmatiq/mirror/fixtures"
	"github.com/dogmatiq/mirror/internal/x/gomegax"
	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// Out is a container for values that are provided by the store-specific
// "before" function to the test-suite.
type Out struct {
	// Store is the store to be tested.
	Store store.Store

	// TestTimeout is the maximum duration allowed for each test.
	TestTimeout time.Duration
}

// DefaultTestTimeout is the default test timeout.
const DefaultTestTimeout = 3 * time.Second

// Declare declares generic behavioral tests for a specific store
// implementation.
func Declare(
	before func(context.Context) Out,
	after func(),
) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		out    Out
	)

	ginkgo.BeforeEach(func() {
		setupCtx, cancelSetup := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelSetup()

		out = before(setupCtx)

		if out.TestTimeout <= 0 {
			out.TestTimeout = DefaultTestTimeout
		}

		ctx, cancel = context.WithTimeout(context.Background(), out.TestTimeout)
	})

	ginkgo.AfterEach(func() {
		if after != nil {
			after()
		}

		cancel()
	})

	ginkgo.Describe("func Get()", func() {
		ginkgo.It("returns false if the workflow has never been stored", func() {
			_, ok, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ok).To(gomega.BeFalse())
		})

		ginkgo.It("returns the stored snapshot", func() {
			err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			rec, ok, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(rec.WorkflowID).To(gomega.Equal("wf-1"))
			gomega.Expect(rec.Snapshot).To(gomegax.EqualX(fixtures.NewSnapshot("wf-1", "<v1>")))
			gomega.Expect(rec.Revision).To(gomega.BeNumerically("==", 1))
			gomega.Expect(rec.UpdatedAt).To(gomega.BeTemporally("~", time.Now(), time.Second))
		})

		ginkgo.It("does not return snapshots for other workflows", func() {
			err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			_, ok, err := out.Store.Get(ctx, "wf-2")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ok).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("func Put()", func() {
		ginkgo.It("replaces the existing snapshot in its entirety", func() {
			err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			next := &snapshot.Snapshot{
				Workflow: &snapshot.Workflow{ID: "wf-1", Stamp: "<v2>"},
			}

			err = out.Store.Put(ctx, "wf-1", next)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			rec, ok, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(rec.Snapshot).To(gomegax.EqualX(next))
			gomega.Expect(rec.Snapshot.IsEmpty()).To(gomega.BeTrue())
		})

		ginkgo.It("increments the revision", func() {
			for i := 0; i < 3; i++ {
				err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<stamp>"))
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			}

			rec, _, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(rec.Revision).To(gomega.BeNumerically("==", 3))
		})

		ginkgo.It("is not affected by changes made to the snapshot after it is stored", func() {
			s := fixtures.NewSnapshot("wf-1", "<v1>")

			err := out.Store.Put(ctx, "wf-1", s)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			s.Workflow.Status = "<changed>"
			s.Tasks = nil

			rec, _, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(rec.Snapshot).To(gomegax.EqualX(fixtures.NewSnapshot("wf-1", "<v1>")))
		})

		ginkgo.It("returns an error if the snapshot is nil", func() {
			err := out.Store.Put(ctx, "wf-1", nil)
			gomega.Expect(err).Should(gomega.HaveOccurred())
		})

		ginkgo.It("never exposes a partially written snapshot to readers", func() {
			var g sync.WaitGroup
			g.Add(1)

			go func() {
				defer ginkgo.GinkgoRecover()
				defer g.Done()

				for i := 0; i < 50; i++ {
					stamp := "<v1>"
					if i%2 == 1 {
						stamp = "<v2>"
					}

					err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", stamp))
					gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
				}
			}()

			done := make(chan struct{})
			go func() {
				g.Wait()
				close(done)
			}()

			for {
				rec, ok, err := out.Store.Get(ctx, "wf-1")
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

				if ok {
					expectConsistentStamps(rec.Snapshot)
				}

				select {
				case <-done:
					return
				default:
				}
			}
		})
	})

	ginkgo.Describe("func Remove()", func() {
		ginkgo.It("removes the workflow from the store", func() {
			err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			err = out.Store.Remove(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			_, ok, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ok).To(gomega.BeFalse())
		})

		ginkgo.It("does not return an error if the workflow is not in the store", func() {
			err := out.Store.Remove(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
		})

		ginkgo.It("restarts the revision if the workflow is stored again", func() {
			err := out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			err = out.Store.Remove(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			err = out.Store.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v2>"))
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			rec, _, err := out.Store.Get(ctx, "wf-1")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(rec.Revision).To(gomega.BeNumerically("==", 1))
		})
	})

	ginkgo.Describe("func IDs()", func() {
		ginkgo.It("returns an empty slice if the store is empty", func() {
			ids, err := out.Store.IDs(ctx)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ids).To(gomega.BeEmpty())
		})

		ginkgo.It("returns the IDs of the stored workflows in order", func() {
			for _, id := range []string{"wf-3", "wf-1", "wf-2"} {
				err := out.Store.Put(ctx, id, fixtures.NewSnapshot(id, "<v1>"))
				gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			}

			err := out.Store.Remove(ctx, "wf-2")
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())

			ids, err := out.Store.IDs(ctx)
			gomega.Expect(err).ShouldNot(gomega.HaveOccurred())
			gomega.Expect(ids).To(gomega.Equal([]string{"wf-1", "wf-3"}))
		})
	})
}

// expectConsistentStamps asserts that every record within s has the same
// stamp as its workflow record.
func expectConsistentStamps(s *snapshot.Snapshot) {
	stamp := s.Workflow.Stamp

	for _, x := range s.Tasks {
		gomega.Expect(x.Stamp).To(gomega.Equal(stamp))
	}
	for _, x := range s.TaskProxies {
		gomega.Expect(x.Stamp).To(gomega.Equal(stamp))
	}
	for _, x := range s.Jobs {
		gomega.Expect(x.Stamp).To(gomega.Equal(stamp))
	}
	for _, x := range s.Families {
		gomega.Expect(x.Stamp).To(gomega.Equal(stamp))
	}
	for _, x := range s.FamilyProxies {
		gomega.Expect(x.Stamp).To(gomega.Equal(stamp))
	}
	for _, x := range s.Edges {
		gomega.Expect(x.Stamp).To(gomega.Equal(stamp))
	}
}
