package resync_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dogmatiq/dodeca/logging"
	"github.com/dogmatiq/mirror/endpoint"
	. "github.com/dogmatiq/mirror/fixtures"
	"github.com/dogmatiq/mirror/internal/x/gomegax"
	"github.com/dogmatiq/mirror/registry"
	. "github.com/dogmatiq/mirror/resync"
	"github.com/dogmatiq/mirror/snapshot"
	"github.com/dogmatiq/mirror/store"
	"github.com/dogmatiq/mirror/store/memorystore"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/multierr"
	"golang.org/x/sync/semaphore"
)

var _ = Describe("type Manager", func() {
	var (
		ctx     context.Context
		cancel  context.CancelFunc
		reg     *registry.Registry
		str     *memorystore.Store
		logger  *logging.BufferedLogger
		manager *Manager
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)

		reg = &registry.Registry{}
		str = &memorystore.Store{}
		logger = &logging.BufferedLogger{}

		manager = &Manager{
			Registry: reg,
			Store:    str,
			Logger:   logger,
		}
	})

	AfterEach(func() {
		cancel()
	})

	add := func(id string, c endpoint.Client) {
		reg.Add(registry.Entry{
			WorkflowID: id,
			Client:     c,
		})
	}

	get := func(id string) (store.Record, bool) {
		rec, ok, err := str.Get(ctx, id)
		Expect(err).ShouldNot(HaveOccurred())
		return rec, ok
	}

	failing := func(err error) *EndpointClientStub {
		return &EndpointClientStub{
			RequestFunc: func(context.Context, string, map[string]string) ([]byte, error) {
				return nil, err
			},
		}
	}

	responding := func(data []byte) *EndpointClientStub {
		return &EndpointClientStub{
			RequestFunc: func(context.Context, string, map[string]string) ([]byte, error) {
				return data, nil
			},
		}
	}

	Describe("func SynchronizeAll()", func() {
		It("does nothing if there are no active workflows", func() {
			r := manager.SynchronizeAll(ctx)

			Expect(r.Targets).To(BeEmpty())
			Expect(r.Succeeded).To(BeEmpty())
			Expect(r.Failures).To(BeEmpty())
			Expect(r.Err()).ShouldNot(HaveOccurred())

			ids, err := str.IDs(ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ids).To(BeEmpty())
			Expect(logger.Messages()).To(BeEmpty())
		})

		It("stores the snapshot returned by the scheduler", func() {
			add("wf-1", NewSchedulerStub("wf-1", "<v1>"))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Succeeded).To(ConsistOf("wf-1"))
			Expect(r.Failures).To(BeEmpty())

			rec, ok := get("wf-1")
			Expect(ok).To(BeTrue())
			Expect(rec.Snapshot.WorkflowID()).To(Equal("wf-1"))
			Expect(rec.Snapshot).To(gomegax.EqualX(NewSnapshot("wf-1", "<v1>")))
		})

		It("requests the entire workflow endpoint", func() {
			var ep string
			add("wf-1", &EndpointClientStub{
				RequestFunc: func(_ context.Context, e string, _ map[string]string) ([]byte, error) {
					ep = e
					return NewPayload("wf-1", "<v1>"), nil
				},
			})

			manager.SynchronizeAll(ctx)
			Expect(ep).To(Equal(endpoint.EntireWorkflow))
		})

		It("reports a failure if the request fails", func() {
			cause := errors.New("<error>")
			add("wf-1", failing(cause))

			r := manager.SynchronizeAll(ctx)

			Expect(r.Succeeded).To(BeEmpty())
			Expect(r.Failures).To(HaveLen(1))

			f := r.Failures[0]
			Expect(f.WorkflowID).To(Equal("wf-1"))
			Expect(f.Stage).To(Equal(StageRequest))
			Expect(f.Cause).To(Equal(cause))
			Expect(f).To(MatchError("wf-1: request failed: <error>"))

			_, ok := get("wf-1")
			Expect(ok).To(BeFalse())

			Expect(logger.Messages()).To(ConsistOf(
				logging.BufferedLogMessage{
					Message: "⨀ " + r.ID[:8] + "  = wf-1  ▽ ✖  request failed ● <error>",
				},
			))
		})

		It("leaves the previous snapshot in place if the request fails", func() {
			add("wf-1", NewSchedulerStub("wf-1", "<v1>"))
			manager.SynchronizeAll(ctx)

			add("wf-1", failing(errors.New("<error>")))
			manager.SynchronizeAll(ctx)

			rec, ok := get("wf-1")
			Expect(ok).To(BeTrue())
			Expect(rec.Revision).To(BeNumerically("==", 1))
			Expect(rec.Snapshot).To(gomegax.EqualX(NewSnapshot("wf-1", "<v1>")))
		})

		It("isolates failures to the workflow that failed", func() {
			add("wf-1", NewSchedulerStub("wf-1", "<v1>"))
			add("wf-2", failing(errors.New("<error>")))

			r := manager.SynchronizeAll(ctx)

			Expect(r.Targets).To(Equal([]string{"wf-1", "wf-2"}))
			Expect(r.Succeeded).To(Equal([]string{"wf-1"}))
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].WorkflowID).To(Equal("wf-2"))

			_, ok := get("wf-1")
			Expect(ok).To(BeTrue())

			_, ok = get("wf-2")
			Expect(ok).To(BeFalse())

			Expect(logger.Messages()).To(HaveLen(1))
		})

		It("completes the round even if every workflow fails", func() {
			add("wf-1", failing(errors.New("<error 1>")))
			add("wf-2", failing(errors.New("<error 2>")))
			add("wf-3", responding([]byte{0xff}))

			r := manager.SynchronizeAll(ctx)

			Expect(r.Succeeded).To(BeEmpty())
			Expect(r.Failures).To(HaveLen(3))
			Expect(multierr.Errors(r.Err())).To(HaveLen(3))
			Expect(logger.Messages()).To(HaveLen(3))
		})

		It("reports a failure if the payload can not be decoded", func() {
			add("wf-1", responding([]byte{0xff, 0xff}))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageDecode))

			var de *snapshot.DecodeError
			Expect(errors.As(r.Failures[0].Cause, &de)).To(BeTrue())

			_, ok := get("wf-1")
			Expect(ok).To(BeFalse())
		})

		It("reports a failure if the payload describes a different workflow", func() {
			add("wf-1", NewSchedulerStub("wf-2", "<v1>"))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageDecode))
			Expect(r.Failures[0].Cause).To(Equal(
				IdentityMismatchError{Expected: "wf-1", Actual: "wf-2"},
			))

			_, ok := get("wf-1")
			Expect(ok).To(BeFalse())
			_, ok = get("wf-2")
			Expect(ok).To(BeFalse())
		})

		It("uses the custom decoder, if provided", func() {
			manager.Decode = func([]byte) (*snapshot.Snapshot, error) {
				return NewSnapshot("wf-1", "<custom>"), nil
			}

			add("wf-1", responding(nil))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Failures).To(BeEmpty())

			rec, _ := get("wf-1")
			Expect(rec.Snapshot.Workflow.Stamp).To(Equal("<custom>"))
		})

		It("reports a failure if the snapshot can not be stored", func() {
			manager.Store = &StoreStub{
				Store: str,
				PutFunc: func(context.Context, string, *snapshot.Snapshot) error {
					return errors.New("<error>")
				},
			}

			add("wf-1", NewSchedulerStub("wf-1", "<v1>"))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageStore))
			Expect(r.Failures[0]).To(MatchError("wf-1: store failed: <error>"))
		})

		It("reports a failure if the client panics", func() {
			add("wf-1", &EndpointClientStub{
				RequestFunc: func(context.Context, string, map[string]string) ([]byte, error) {
					panic("<panic>")
				},
			})
			add("wf-2", NewSchedulerStub("wf-2", "<v1>"))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Succeeded).To(Equal([]string{"wf-2"}))
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageRequest))
			Expect(r.Failures[0].Cause).To(Equal(PanicError{Value: "<panic>"}))
		})

		It("reports the stage in which a panic occurred", func() {
			manager.Decode = func([]byte) (*snapshot.Snapshot, error) {
				panic("<panic>")
			}

			add("wf-1", responding(nil))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageDecode))
		})

		It("synchronizes workflows concurrently", func() {
			var (
				started sync.WaitGroup
				barrier = make(chan struct{})
			)

			started.Add(2)
			go func() {
				started.Wait()
				close(barrier)
			}()

			blocking := func(id string) *EndpointClientStub {
				return &EndpointClientStub{
					RequestFunc: func(ctx context.Context, _ string, _ map[string]string) ([]byte, error) {
						started.Done()

						select {
						case <-barrier:
							return NewPayload(id, "<v1>"), nil
						case <-ctx.Done():
							return nil, ctx.Err()
						}
					},
				}
			}

			add("wf-1", blocking("wf-1"))
			add("wf-2", blocking("wf-2"))

			r := manager.SynchronizeAll(ctx)
			Expect(r.Failures).To(BeEmpty())
			Expect(r.Succeeded).To(ConsistOf("wf-1", "wf-2"))
		})

		It("does not cancel other workflows when one fails", func() {
			failed := make(chan struct{})

			add("wf-1", &EndpointClientStub{
				RequestFunc: func(context.Context, string, map[string]string) ([]byte, error) {
					defer close(failed)
					return nil, errors.New("<error>")
				},
			})

			add("wf-2", &EndpointClientStub{
				RequestFunc: func(ctx context.Context, _ string, _ map[string]string) ([]byte, error) {
					<-failed
					time.Sleep(10 * time.Millisecond)

					if err := ctx.Err(); err != nil {
						return nil, err
					}

					return NewPayload("wf-2", "<v1>"), nil
				},
			})

			r := manager.SynchronizeAll(ctx)
			Expect(r.Succeeded).To(Equal([]string{"wf-2"}))
		})

		It("limits concurrency using the semaphore", func() {
			manager.Semaphore = semaphore.NewWeighted(1)

			var active, max int64

			for _, id := range []string{"wf-1", "wf-2", "wf-3"} {
				id := id // capture loop variable

				add(id, &EndpointClientStub{
					RequestFunc: func(context.Context, string, map[string]string) ([]byte, error) {
						n := atomic.AddInt64(&active, 1)
						defer atomic.AddInt64(&active, -1)

						for {
							m := atomic.LoadInt64(&max)
							if n <= m || atomic.CompareAndSwapInt64(&max, m, n) {
								break
							}
						}

						time.Sleep(5 * time.Millisecond)

						return NewPayload(id, "<v1>"), nil
					},
				})
			}

			r := manager.SynchronizeAll(ctx)
			Expect(r.Succeeded).To(HaveLen(3))
			Expect(atomic.LoadInt64(&max)).To(BeNumerically("==", 1))
		})

		It("only synchronizes the workflows that are active when the round starts", func() {
			add("wf-1", &EndpointClientStub{
				RequestFunc: func(context.Context, string, map[string]string) ([]byte, error) {
					add("wf-2", NewSchedulerStub("wf-2", "<v1>"))
					return NewPayload("wf-1", "<v1>"), nil
				},
			})

			r := manager.SynchronizeAll(ctx)
			Expect(r.Targets).To(Equal([]string{"wf-1"}))

			_, ok := get("wf-2")
			Expect(ok).To(BeFalse())

			r = manager.SynchronizeAll(ctx)
			Expect(r.Targets).To(Equal([]string{"wf-1", "wf-2"}))
		})

		It("produces the same snapshot when the responses are unchanged", func() {
			add("wf-1", NewSchedulerStub("wf-1", "<v1>"))

			manager.SynchronizeAll(ctx)
			first, _ := get("wf-1")

			manager.SynchronizeAll(ctx)
			second, _ := get("wf-1")

			Expect(second.Snapshot).To(gomegax.EqualX(first.Snapshot))
			Expect(second.Revision).To(BeNumerically("==", first.Revision+1))
		})

		It("logs successful synchronization at debug level", func() {
			logger.CaptureDebug = true
			add("wf-1", NewSchedulerStub("wf-1", "<v1>"))

			r := manager.SynchronizeAll(ctx)

			Expect(logger.Messages()).To(ConsistOf(
				logging.BufferedLogMessage{
					Message: "⨀ " + r.ID[:8] + "  = wf-1  ▼    synchronized ● revision 1",
					IsDebug: true,
				},
			))
		})

		When("pruning is enabled", func() {
			BeforeEach(func() {
				manager.Prune = true
			})

			It("removes workflows that are no longer active", func() {
				err := str.Put(ctx, "wf-old", NewSnapshot("wf-old", "<v1>"))
				Expect(err).ShouldNot(HaveOccurred())

				add("wf-1", NewSchedulerStub("wf-1", "<v1>"))

				r := manager.SynchronizeAll(ctx)
				Expect(r.Pruned).To(Equal([]string{"wf-old"}))

				ids, err := str.IDs(ctx)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(ids).To(Equal([]string{"wf-1"}))

				Expect(logger.Messages()).To(ConsistOf(
					logging.BufferedLogMessage{
						Message: "⨀ " + r.ID[:8] + "  = wf-old  ⌫    pruned ● workflow is no longer active",
					},
				))
			})

			It("does not remove active workflows that failed", func() {
				err := str.Put(ctx, "wf-1", NewSnapshot("wf-1", "<v1>"))
				Expect(err).ShouldNot(HaveOccurred())

				add("wf-1", failing(errors.New("<error>")))

				r := manager.SynchronizeAll(ctx)
				Expect(r.Pruned).To(BeEmpty())

				_, ok := get("wf-1")
				Expect(ok).To(BeTrue())
			})

			It("reports a failure if a workflow can not be removed", func() {
				err := str.Put(ctx, "wf-old", NewSnapshot("wf-old", "<v1>"))
				Expect(err).ShouldNot(HaveOccurred())

				manager.Store = &StoreStub{
					Store: str,
					RemoveFunc: func(context.Context, string) error {
						return errors.New("<error>")
					},
				}

				r := manager.SynchronizeAll(ctx)
				Expect(r.Pruned).To(BeEmpty())
				Expect(r.Failures).To(HaveLen(1))
				Expect(r.Failures[0].WorkflowID).To(Equal("wf-old"))
				Expect(r.Failures[0].Stage).To(Equal(StageStore))
			})
		})

		When("pruning is disabled", func() {
			It("retains workflows that are no longer active", func() {
				err := str.Put(ctx, "wf-old", NewSnapshot("wf-old", "<v1>"))
				Expect(err).ShouldNot(HaveOccurred())

				r := manager.SynchronizeAll(ctx)
				Expect(r.Pruned).To(BeEmpty())

				_, ok := get("wf-old")
				Expect(ok).To(BeTrue())
			})
		})
	})

	Describe("func ApplyDeltas()", func() {
		var client *EndpointClientStub

		BeforeEach(func() {
			client = &EndpointClientStub{
				RequestFunc: func(_ context.Context, ep string, _ map[string]string) ([]byte, error) {
					switch ep {
					case endpoint.EntireWorkflow:
						return NewPayload("wf-1", "<v1>"), nil
					case endpoint.DataElements:
						return NewDeltaPayload("wf-1", "<v2>"), nil
					}
					return nil, errors.New("unexpected endpoint")
				},
			}

			add("wf-1", client)
		})

		It("applies the delta to the stored snapshot", func() {
			manager.SynchronizeAll(ctx)

			r := manager.ApplyDeltas(ctx)
			Expect(r.Failures).To(BeEmpty())
			Expect(r.Succeeded).To(Equal([]string{"wf-1"}))

			expect, err := NewDelta("wf-1", "<v2>").ApplyTo(NewSnapshot("wf-1", "<v1>"))
			Expect(err).ShouldNot(HaveOccurred())

			rec, _ := get("wf-1")
			Expect(rec.Snapshot).To(gomegax.EqualX(expect))
			Expect(rec.Revision).To(BeNumerically("==", 2))
		})

		It("reports a failure without making a request if there is no stored snapshot", func() {
			r := manager.ApplyDeltas(ctx)

			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageApply))
			Expect(r.Failures[0].Cause).To(Equal(ErrNoBaseSnapshot))
			Expect(client.Requests()).To(Equal(0))

			_, ok := get("wf-1")
			Expect(ok).To(BeFalse())
		})

		It("reports a failure if the delta can not be decoded", func() {
			manager.SynchronizeAll(ctx)
			manager.DecodeDelta = func([]byte) (*snapshot.Delta, error) {
				return nil, errors.New("<error>")
			}

			r := manager.ApplyDeltas(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageDecode))

			rec, _ := get("wf-1")
			Expect(rec.Revision).To(BeNumerically("==", 1))
		})

		It("reports a failure if the delta describes a different workflow", func() {
			manager.SynchronizeAll(ctx)
			manager.DecodeDelta = func([]byte) (*snapshot.Delta, error) {
				return NewDelta("wf-2", "<v2>"), nil
			}

			r := manager.ApplyDeltas(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Cause).To(Equal(
				IdentityMismatchError{Expected: "wf-1", Actual: "wf-2"},
			))
		})

		It("reports a failure if the delta leaves the snapshot invalid", func() {
			manager.SynchronizeAll(ctx)
			manager.DecodeDelta = func([]byte) (*snapshot.Delta, error) {
				return &snapshot.Delta{
					Upserted: snapshot.Elements{
						Jobs: []snapshot.Job{{ID: ""}},
					},
				}, nil
			}

			r := manager.ApplyDeltas(ctx)
			Expect(r.Failures).To(HaveLen(1))
			Expect(r.Failures[0].Stage).To(Equal(StageApply))

			rec, _ := get("wf-1")
			Expect(rec.Snapshot).To(gomegax.EqualX(NewSnapshot("wf-1", "<v1>")))
		})

		It("does not write to the store if the delta is empty", func() {
			manager.SynchronizeAll(ctx)
			manager.DecodeDelta = func([]byte) (*snapshot.Delta, error) {
				return &snapshot.Delta{}, nil
			}

			r := manager.ApplyDeltas(ctx)
			Expect(r.Succeeded).To(Equal([]string{"wf-1"}))

			rec, _ := get("wf-1")
			Expect(rec.Revision).To(BeNumerically("==", 1))
		})

		It("does not overlap with a full synchronization round", func() {
			manager.SynchronizeAll(ctx)

			var (
				inFull  = make(chan struct{})
				release = make(chan struct{})
				order   []string
				m       sync.Mutex
			)

			client.RequestFunc = func(_ context.Context, ep string, _ map[string]string) ([]byte, error) {
				m.Lock()
				order = append(order, ep)
				m.Unlock()

				if ep == endpoint.EntireWorkflow {
					close(inFull)
					<-release
					return NewPayload("wf-1", "<v1>"), nil
				}

				return NewDeltaPayload("wf-1", "<v2>"), nil
			}

			full := make(chan Round, 1)
			go func() {
				full <- manager.SynchronizeAll(ctx)
			}()

			<-inFull

			delta := make(chan Round, 1)
			go func() {
				delta <- manager.ApplyDeltas(ctx)
			}()

			Consistently(delta, 50*time.Millisecond).ShouldNot(Receive())
			close(release)

			Eventually(full).Should(Receive())
			Eventually(delta).Should(Receive())

			m.Lock()
			defer m.Unlock()
			Expect(order).To(Equal([]string{
				endpoint.EntireWorkflow,
				endpoint.DataElements,
			}))
		})
	})
})

var _ = Describe("type Round", func() {
	Describe("func Err()", func() {
		It("returns nil if there are no failures", func() {
			Expect(Round{}.Err()).ShouldNot(HaveOccurred())
		})

		It("returns an error that combines every failure", func() {
			cause := errors.New("<cause>")

			r := Round{
				Failures: []Failure{
					{WorkflowID: "wf-1", Stage: StageRequest, Cause: cause},
					{WorkflowID: "wf-2", Stage: StageDecode, Cause: errors.New("<other>")},
				},
			}

			err := r.Err()
			Expect(err).To(MatchError(cause))
			Expect(err).To(MatchError("wf-1: request failed: <cause>; wf-2: decode failed: <other>"))
		})
	})
})
