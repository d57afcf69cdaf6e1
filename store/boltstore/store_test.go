package boltstore_test

import (
	"context"
	"time"

	"github.com/dogmatiq/mirror/fixtures"
	"github.com/dogmatiq/mirror/internal/testing/boltdbtest"
	"github.com/dogmatiq/mirror/internal/x/gomegax"
	"github.com/dogmatiq/mirror/store"
	. "github.com/dogmatiq/mirror/store/boltstore"
	"github.com/dogmatiq/mirror/store/internal/storetest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.etcd.io/bbolt"
)

var _ = Describe("type Store", func() {
	Context("when using an existing database", func() {
		var close func()

		storetest.Declare(
			func(context.Context) storetest.Out {
				var db *bbolt.DB
				db, close = boltdbtest.Open()

				return storetest.Out{
					Store: New(db),
				}
			},
			func() {
				close()
			},
		)
	})

	Context("when opening a database file", func() {
		var (
			s      *Store
			remove func()
		)

		storetest.Declare(
			func(ctx context.Context) storetest.Out {
				var path string
				path, remove = boltdbtest.TempPath()

				var err error
				s, err = Open(ctx, path, 0, nil)
				Expect(err).ShouldNot(HaveOccurred())

				return storetest.Out{
					Store: s,
				}
			},
			func() {
				s.Close()
				remove()
			},
		)
	})

	Describe("func Open()", func() {
		It("retains snapshots after the store is reopened", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			path, remove := boltdbtest.TempPath()
			defer remove()

			s, err := Open(ctx, path, 0, nil)
			Expect(err).ShouldNot(HaveOccurred())

			err = s.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.Close()).To(Succeed())

			s, err = Open(ctx, path, 0, nil)
			Expect(err).ShouldNot(HaveOccurred())
			defer s.Close()

			rec, ok, err := s.Get(ctx, "wf-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(rec.Snapshot).To(gomegax.EqualX(fixtures.NewSnapshot("wf-1", "<v1>")))
			Expect(rec.Revision).To(BeNumerically("==", 1))
		})

		It("returns an error if the database is locked by another store", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			path, remove := boltdbtest.TempPath()
			defer remove()

			s, err := Open(ctx, path, 0, nil)
			Expect(err).ShouldNot(HaveOccurred())
			defer s.Close()

			ctx, cancel = context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()

			_, err = Open(ctx, path, 0, nil)
			Expect(err).To(Equal(context.DeadlineExceeded))
		})
	})

	Describe("func Get()", func() {
		It("returns an error if the stored record is corrupt", func() {
			db, close := boltdbtest.Open()
			defer close()

			err := db.Update(func(tx *bbolt.Tx) error {
				b, err := tx.CreateBucketIfNotExists([]byte("workflows"))
				if err != nil {
					return err
				}
				return b.Put([]byte("wf-1"), []byte{0x0a, 0xff})
			})
			Expect(err).ShouldNot(HaveOccurred())

			_, ok, err := New(db).Get(context.Background(), "wf-1")
			Expect(err).To(MatchError(ContainSubstring("stored record for wf-1 is corrupt")))
			Expect(ok).To(BeFalse())
		})
	})

	Describe("func Put()", func() {
		It("returns an error and keeps the existing record if the snapshot can not be marshaled", func() {
			db, close := boltdbtest.Open()
			defer close()

			ctx := context.Background()
			s := New(db)

			err := s.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			Expect(err).ShouldNot(HaveOccurred())

			snap := fixtures.NewSnapshot("wf-1", "<v2>")
			snap.Workflow.Name = "bad\xff\xfe"

			err = s.Put(ctx, "wf-1", snap)
			Expect(err).Should(HaveOccurred())

			rec, ok, err := s.Get(ctx, "wf-1")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(rec.Revision).To(BeNumerically("==", 1))
			Expect(rec.Snapshot.Workflow.Stamp).To(Equal("<v1>"))
		})
	})

	Describe("func Close()", func() {
		It("causes future operations to return ErrClosed", func() {
			db, close := boltdbtest.Open()
			defer close()

			ctx := context.Background()
			s := New(db)
			Expect(s.Close()).To(Succeed())

			err := s.Put(ctx, "wf-1", fixtures.NewSnapshot("wf-1", "<v1>"))
			Expect(err).To(Equal(store.ErrClosed))

			_, _, err = s.Get(ctx, "wf-1")
			Expect(err).To(Equal(store.ErrClosed))

			_, err = s.IDs(ctx)
			Expect(err).To(Equal(store.ErrClosed))

			err = s.Remove(ctx, "wf-1")
			Expect(err).To(Equal(store.ErrClosed))
		})

		It("does not close a database that the store did not open", func() {
			db, close := boltdbtest.Open()
			defer close()

			Expect(New(db).Close()).To(Succeed())
			Expect(db.View(func(*bbolt.Tx) error { return nil })).To(Succeed())
		})

		It("returns ErrClosed if the store is already closed", func() {
			db, close := boltdbtest.Open()
			defer close()

			s := New(db)
			Expect(s.Close()).To(Succeed())
			Expect(s.Close()).To(Equal(store.ErrClosed))
		})
	})
})
