package fileregistry_test

import (
	"os"
	"path/filepath"

	. "github.com/dogmatiq/mirror/registry/fileregistry"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("func Parse()", func() {
	It("parses the workflows in the file", func() {
		workflows, err := Parse([]byte(`
workflows:
  - id: wf-1
    address: localhost:43001
    owner: alice
    labels:
      site: north
  - id: wf-2
    address: localhost:43002
`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(workflows).To(Equal([]Workflow{
			{
				ID:      "wf-1",
				Address: "localhost:43001",
				Owner:   "alice",
				Labels:  map[string]string{"site": "north"},
			},
			{
				ID:      "wf-2",
				Address: "localhost:43002",
			},
		}))
	})

	It("returns no workflows for an empty document", func() {
		workflows, err := Parse(nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(workflows).To(BeEmpty())
	})

	DescribeTable(
		"it returns an error if the file is invalid",
		func(data, expect string) {
			_, err := Parse([]byte(data))
			Expect(err).To(MatchError(ContainSubstring(expect)))
		},
		Entry(
			"malformed YAML",
			"workflows: [",
			"unable to parse registry",
		),
		Entry(
			"unknown field",
			"workflows:\n  - id: wf-1\n    address: localhost:1\n    adress: typo\n",
			"unable to parse registry",
		),
		Entry(
			"empty ID",
			"workflows:\n  - address: localhost:1\n",
			"workflow #1 has an empty ID",
		),
		Entry(
			"duplicate ID",
			"workflows:\n  - id: wf-1\n    address: localhost:1\n  - id: wf-1\n    address: localhost:2\n",
			"workflow wf-1 is listed more than once",
		),
		Entry(
			"empty address",
			"workflows:\n  - id: wf-1\n",
			"workflow wf-1 has an empty address",
		),
	)
})

var _ = Describe("func Load()", func() {
	It("includes the path in parse errors", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "registry.yaml")

		err := os.WriteFile(path, []byte("workflows: ["), 0600)
		Expect(err).ShouldNot(HaveOccurred())

		_, err = Load(path)
		Expect(err).To(MatchError(HavePrefix(path + ": ")))
	})

	It("returns an error if the file does not exist", func() {
		_, err := Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
