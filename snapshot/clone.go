package snapshot

// Clone returns a deep copy of s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	return &Snapshot{
		Workflow: s.Workflow.Clone(),
		Elements: s.Elements.Clone(),
	}
}

// Clone returns a deep copy of w.
func (w *Workflow) Clone() *Workflow {
	if w == nil {
		return nil
	}

	c := *w

	if w.StateTotals != nil {
		c.StateTotals = make(map[string]int32, len(w.StateTotals))
		for k, v := range w.StateTotals {
			c.StateTotals[k] = v
		}
	}

	return &c
}

// Clone returns a deep copy of e.
func (e Elements) Clone() Elements {
	c := Elements{
		Tasks:         cloneSlice(e.Tasks),
		TaskProxies:   cloneSlice(e.TaskProxies),
		Jobs:          cloneSlice(e.Jobs),
		Families:      cloneSlice(e.Families),
		FamilyProxies: cloneSlice(e.FamilyProxies),
		Edges:         cloneSlice(e.Edges),
	}

	for i := range c.Tasks {
		t := &c.Tasks[i]
		t.Parents = cloneSlice(t.Parents)
	}

	for i := range c.TaskProxies {
		p := &c.TaskProxies[i]
		p.Jobs = cloneSlice(p.Jobs)
	}

	for i := range c.Families {
		f := &c.Families[i]
		f.Parents = cloneSlice(f.Parents)
		f.ChildTasks = cloneSlice(f.ChildTasks)
		f.ChildFamilies = cloneSlice(f.ChildFamilies)
	}

	for i := range c.FamilyProxies {
		p := &c.FamilyProxies[i]
		p.ChildTasks = cloneSlice(p.ChildTasks)
		p.ChildFamilies = cloneSlice(p.ChildFamilies)
	}

	return c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}

	return append(make([]T, 0, len(s)), s...)
}
