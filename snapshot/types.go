package snapshot

// Snapshot is the complete, self-contained state of one workflow.
type Snapshot struct {
	// Workflow is the top-level workflow record.
	Workflow *Workflow `yaml:"workflow"`

	// Elements contains the workflow's constituent elements.
	Elements `yaml:",inline"`
}

// WorkflowID returns the ID of the workflow that the snapshot describes.
//
// It returns an empty string if s has no workflow record.
func (s *Snapshot) WorkflowID() string {
	if s == nil || s.Workflow == nil {
		return ""
	}

	return s.Workflow.ID
}

// Elements is a collection of the elements that make up a workflow.
type Elements struct {
	Tasks         []Task        `yaml:"tasks,omitempty"`
	TaskProxies   []TaskProxy   `yaml:"task_proxies,omitempty"`
	Jobs          []Job         `yaml:"jobs,omitempty"`
	Families      []Family      `yaml:"families,omitempty"`
	FamilyProxies []FamilyProxy `yaml:"family_proxies,omitempty"`
	Edges         []Edge        `yaml:"edges,omitempty"`
}

// IsEmpty returns true if e does not contain any elements.
func (e *Elements) IsEmpty() bool {
	return len(e.Tasks) == 0 &&
		len(e.TaskProxies) == 0 &&
		len(e.Jobs) == 0 &&
		len(e.Families) == 0 &&
		len(e.FamilyProxies) == 0 &&
		len(e.Edges) == 0
}

// Workflow is the top-level record describing a workflow run.
type Workflow struct {
	ID          string           `yaml:"id"`
	Stamp       string           `yaml:"stamp,omitempty"`
	Name        string           `yaml:"name,omitempty"`
	Status      string           `yaml:"status,omitempty"`
	StatusMsg   string           `yaml:"status_msg,omitempty"`
	Host        string           `yaml:"host,omitempty"`
	Port        int32            `yaml:"port,omitempty"`
	Owner       string           `yaml:"owner,omitempty"`
	RunMode     string           `yaml:"run_mode,omitempty"`
	LastUpdated float64          `yaml:"last_updated,omitempty"`
	StateTotals map[string]int32 `yaml:"state_totals,omitempty"`
}

// Task is the definition of a task, independent of any cycle point.
type Task struct {
	ID              string   `yaml:"id"`
	Stamp           string   `yaml:"stamp,omitempty"`
	Name            string   `yaml:"name,omitempty"`
	MeanElapsedTime float32  `yaml:"mean_elapsed_time,omitempty"`
	Depth           int32    `yaml:"depth,omitempty"`
	Parents         []string `yaml:"parents,omitempty"`
}

// TaskProxy is an instance of a task at a specific cycle point.
type TaskProxy struct {
	ID          string   `yaml:"id"`
	Stamp       string   `yaml:"stamp,omitempty"`
	Task        string   `yaml:"task,omitempty"`
	State       string   `yaml:"state,omitempty"`
	CyclePoint  string   `yaml:"cycle_point,omitempty"`
	JobSubmits  int32    `yaml:"job_submits,omitempty"`
	Jobs        []string `yaml:"jobs,omitempty"`
	FirstParent string   `yaml:"first_parent,omitempty"`
	IsHeld      bool     `yaml:"is_held,omitempty"`
}

// Job is a single submission of a task proxy.
type Job struct {
	ID            string `yaml:"id"`
	Stamp         string `yaml:"stamp,omitempty"`
	SubmitNum     int32  `yaml:"submit_num,omitempty"`
	State         string `yaml:"state,omitempty"`
	TaskProxy     string `yaml:"task_proxy,omitempty"`
	SubmittedTime string `yaml:"submitted_time,omitempty"`
	StartedTime   string `yaml:"started_time,omitempty"`
	FinishedTime  string `yaml:"finished_time,omitempty"`
	JobRunnerName string `yaml:"job_runner_name,omitempty"`
	JobID         string `yaml:"job_id,omitempty"`
	Platform      string `yaml:"platform,omitempty"`
}

// Family is the definition of a group of tasks.
type Family struct {
	ID            string   `yaml:"id"`
	Stamp         string   `yaml:"stamp,omitempty"`
	Name          string   `yaml:"name,omitempty"`
	Depth         int32    `yaml:"depth,omitempty"`
	Parents       []string `yaml:"parents,omitempty"`
	ChildTasks    []string `yaml:"child_tasks,omitempty"`
	ChildFamilies []string `yaml:"child_families,omitempty"`
}

// FamilyProxy is an instance of a family at a specific cycle point.
type FamilyProxy struct {
	ID            string   `yaml:"id"`
	Stamp         string   `yaml:"stamp,omitempty"`
	Family        string   `yaml:"family,omitempty"`
	CyclePoint    string   `yaml:"cycle_point,omitempty"`
	State         string   `yaml:"state,omitempty"`
	ChildTasks    []string `yaml:"child_tasks,omitempty"`
	ChildFamilies []string `yaml:"child_families,omitempty"`
	FirstParent   string   `yaml:"first_parent,omitempty"`
	IsHeld        bool     `yaml:"is_held,omitempty"`
}

// Edge is a dependency between two task proxies.
type Edge struct {
	ID      string `yaml:"id"`
	Stamp   string `yaml:"stamp,omitempty"`
	Source  string `yaml:"source,omitempty"`
	Target  string `yaml:"target,omitempty"`
	Suicide bool   `yaml:"suicide,omitempty"`
	Cond    bool   `yaml:"cond,omitempty"`
}

func (e Task) elementID() string        { return e.ID }
func (e TaskProxy) elementID() string   { return e.ID }
func (e Job) elementID() string         { return e.ID }
func (e Family) elementID() string      { return e.ID }
func (e FamilyProxy) elementID() string { return e.ID }
func (e Edge) elementID() string        { return e.ID }

// element is a constraint satisfied by all workflow element types.
type element interface {
	Task | TaskProxy | Job | Family | FamilyProxy | Edge
	elementID() string
}

// find returns the element in elems with the given ID.
func find[E element](elems []E, id string) (E, bool) {
	for _, e := range elems {
		if e.elementID() == id {
			return e, true
		}
	}

	var zero E
	return zero, false
}

// Task returns the task with the given ID.
func (e *Elements) Task(id string) (Task, bool) { return find(e.Tasks, id) }

// TaskProxy returns the task proxy with the given ID.
func (e *Elements) TaskProxy(id string) (TaskProxy, bool) { return find(e.TaskProxies, id) }

// Job returns the job with the given ID.
func (e *Elements) Job(id string) (Job, bool) { return find(e.Jobs, id) }

// Family returns the family with the given ID.
func (e *Elements) Family(id string) (Family, bool) { return find(e.Families, id) }

// FamilyProxy returns the family proxy with the given ID.
func (e *Elements) FamilyProxy(id string) (FamilyProxy, bool) { return find(e.FamilyProxies, id) }

// Edge returns the edge with the given ID.
func (e *Elements) Edge(id string) (Edge, bool) { return find(e.Edges, id) }
