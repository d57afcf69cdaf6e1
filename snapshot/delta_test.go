package snapshot_test

import (
	"errors"
	"fmt"

	. "github.com/dogmatiq/mirror/fixtures"
	"github.com/dogmatiq/mirror/internal/x/gomegax"
	. "github.com/dogmatiq/mirror/snapshot"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("type Delta", func() {
	Describe("func ApplyTo()", func() {
		var base *Snapshot

		BeforeEach(func() {
			base = NewSnapshot("wf-1", "<v1>")
		})

		It("replaces the workflow record and upserted elements by ID", func() {
			s, err := NewDelta("wf-1", "<v2>").ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(s.Workflow.Stamp).To(Equal("<v2>"))
			Expect(s.Workflow.StateTotals).To(HaveKeyWithValue("waiting", int32(1)))

			p, ok := s.TaskProxy("wf-1//20240101T00/model")
			Expect(ok).To(BeTrue())
			Expect(p.State).To(Equal("succeeded"))
			Expect(p.IsHeld).To(BeFalse()) // whole element replaced, not merged

			_, ok = s.TaskProxy("wf-1//20240101T00/post")
			Expect(ok).To(BeTrue())
			Expect(s.TaskProxies).To(HaveLen(3))
		})

		It("removes pruned elements", func() {
			s, err := NewDelta("wf-1", "<v2>").ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.Edges).To(BeEmpty())
		})

		It("leaves untouched elements as they were", func() {
			s, err := NewDelta("wf-1", "<v2>").ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.Tasks).To(Equal(base.Tasks))
			Expect(s.Jobs).To(Equal(base.Jobs))
		})

		It("does not modify the base snapshot", func() {
			_, err := NewDelta("wf-1", "<v2>").ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(base).To(Equal(NewSnapshot("wf-1", "<v1>")))
		})

		It("removes elements that are both upserted and pruned", func() {
			d := &Delta{
				Upserted: Elements{
					Edges: []Edge{{ID: "<edge>"}},
				},
				Pruned: ElementIDs{
					Edges: []string{"<edge>"},
				},
			}

			s, err := d.ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())

			_, ok := s.Edge("<edge>")
			Expect(ok).To(BeFalse())
		})

		It("replaces existing elements in place and appends new ones in order", func() {
			d := &Delta{}
			for i := 0; i < 5000; i++ {
				d.Upserted.Jobs = append(d.Upserted.Jobs, Job{
					ID: fmt.Sprintf("wf-1//job-%04d", i),
				})
			}

			existing := base.Jobs[0]
			existing.State = "failed"
			d.Upserted.Jobs = append(d.Upserted.Jobs, existing)

			s, err := d.ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.Jobs).To(HaveLen(len(base.Jobs) + 5000))
			Expect(s.Jobs[0]).To(Equal(existing))
			Expect(s.Jobs[len(base.Jobs)].ID).To(Equal("wf-1//job-0000"))
			Expect(s.Jobs[len(s.Jobs)-1].ID).To(Equal("wf-1//job-4999"))
		})

		It("keeps the last of several upserted elements with the same ID", func() {
			d := &Delta{
				Upserted: Elements{
					Edges: []Edge{
						{ID: "<edge>", Source: "<first>"},
						{ID: "<edge>", Source: "<second>"},
					},
				},
			}

			s, err := d.ApplyTo(base)
			Expect(err).ShouldNot(HaveOccurred())

			e, ok := s.Edge("<edge>")
			Expect(ok).To(BeTrue())
			Expect(e.Source).To(Equal("<second>"))
			Expect(s.Edges).To(HaveLen(len(base.Edges) + 1))
		})

		It("returns ErrNoBase if there is no base snapshot", func() {
			_, err := NewDelta("wf-1", "<v2>").ApplyTo(nil)
			Expect(err).To(MatchError(ErrNoBase))
		})

		It("returns an error if the delta is for a different workflow", func() {
			_, err := NewDelta("wf-2", "<v2>").ApplyTo(base)
			Expect(err).To(MatchError("delta for workflow wf-2 can not be applied to workflow wf-1"))
		})
	})

	Describe("func IsEmpty()", func() {
		It("returns true for the zero-value", func() {
			Expect((&Delta{}).IsEmpty()).To(BeTrue())
		})

		It("returns false if the delta prunes elements", func() {
			d := &Delta{Pruned: ElementIDs{Jobs: []string{"<job>"}}}
			Expect(d.IsEmpty()).To(BeFalse())
		})
	})
})

// marshalDelta returns the binary representation of d.
func marshalDelta(d *Delta) []byte {
	data, err := MarshalDelta(d)
	Expect(err).ShouldNot(HaveOccurred())
	return data
}

var _ = Describe("func DecodeDelta()", func() {
	It("decodes a delta produced by MarshalDelta()", func() {
		expect := NewDelta("wf-1", "<v2>")

		d, err := DecodeDelta(marshalDelta(expect))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(d).To(gomegax.EqualX(expect))
	})

	It("decodes an empty delta", func() {
		d, err := DecodeDelta(marshalDelta(&Delta{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(d.IsEmpty()).To(BeTrue())
	})

	It("returns a DecodeError if the payload is malformed", func() {
		data := marshalDelta(NewDelta("wf-1", "<v2>"))

		_, err := DecodeDelta(data[:len(data)-1])

		var de *DecodeError
		Expect(errors.As(err, &de)).To(BeTrue())
		Expect(de.Type).To(Equal("delta"))
	})

	It("returns an error if the workflow record has no ID", func() {
		_, err := DecodeDelta(marshalDelta(&Delta{Workflow: &Workflow{Name: "<name>"}}))
		Expect(err).To(MatchError("unable to decode delta: workflow ID must not be empty"))
	})
})
