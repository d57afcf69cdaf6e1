package main

import (
	"github.com/dogmatiq/mirror/snapshot"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const fixtureYAML = `
workflow:
  id: wf-1
  stamp: <stamp>
  status: running
  state_totals:
    running: 1
tasks:
  - id: wf-1//$namespace|prep
    name: prep
task_proxies:
  - id: wf-1//1/prep
    task: wf-1//$namespace|prep
    state: running
    cycle_point: "1"
    jobs: [wf-1//1/prep/01]
jobs:
  - id: wf-1//1/prep/01
    submit_num: 1
    state: running
    task_proxy: wf-1//1/prep
`

var _ = Describe("func parseSnapshot()", func() {
	It("parses the workflow and its elements", func() {
		s, err := parseSnapshot([]byte(fixtureYAML))
		Expect(err).ShouldNot(HaveOccurred())

		Expect(s.WorkflowID()).To(Equal("wf-1"))
		Expect(s.Workflow.Stamp).To(Equal("<stamp>"))
		Expect(s.Workflow.StateTotals).To(Equal(map[string]int32{"running": 1}))
		Expect(s.Tasks).To(HaveLen(1))

		j, ok := s.Job("wf-1//1/prep/01")
		Expect(ok).To(BeTrue())
		Expect(j.SubmitNum).To(BeEquivalentTo(1))
		Expect(j.TaskProxy).To(Equal("wf-1//1/prep"))
	})

	It("returns an error if the YAML contains unknown fields", func() {
		_, err := parseSnapshot([]byte("workflow: {id: wf-1}\nunknown: 1\n"))
		Expect(err).To(MatchError(ContainSubstring("unable to parse snapshot: ")))
	})

	It("returns an error if there is no workflow record", func() {
		_, err := parseSnapshot([]byte("tasks: []\n"))
		Expect(err).To(Equal(snapshot.ErrMissingWorkflow))
	})

	It("returns an error if the snapshot is not well-formed", func() {
		_, err := parseSnapshot([]byte(`
workflow: {id: wf-1}
edges:
  - id: ""
`))
		Expect(err).To(MatchError("edge ID must not be empty"))
	})
})
