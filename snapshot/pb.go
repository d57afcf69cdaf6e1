package snapshot

import (
	"sort"

	"github.com/dogmatiq/mirror/snapshot/internal/pb"
)

func workflowFromPB(m *pb.Workflow) *Workflow {
	if m == nil {
		return nil
	}

	w := &Workflow{
		ID:          m.GetId(),
		Stamp:       m.GetStamp(),
		Name:        m.GetName(),
		Status:      m.GetStatus(),
		StatusMsg:   m.GetStatusMsg(),
		Host:        m.GetHost(),
		Port:        m.GetPort(),
		Owner:       m.GetOwner(),
		RunMode:     m.GetRunMode(),
		LastUpdated: m.GetLastUpdated(),
	}

	if len(m.GetStateTotals()) != 0 {
		w.StateTotals = make(map[string]int32, len(m.GetStateTotals()))
		for _, t := range m.GetStateTotals() {
			w.StateTotals[t.GetState()] = t.GetCount()
		}
	}

	return w
}

func workflowToPB(w *Workflow) *pb.Workflow {
	if w == nil {
		return nil
	}

	m := &pb.Workflow{
		Id:          w.ID,
		Stamp:       w.Stamp,
		Name:        w.Name,
		Status:      w.Status,
		StatusMsg:   w.StatusMsg,
		Host:        w.Host,
		Port:        w.Port,
		Owner:       w.Owner,
		RunMode:     w.RunMode,
		LastUpdated: w.LastUpdated,
	}

	for state, n := range w.StateTotals {
		m.StateTotals = append(m.StateTotals, &pb.StateTotal{State: state, Count: n})
	}

	sort.Slice(m.StateTotals, func(i, j int) bool {
		return m.StateTotals[i].State < m.StateTotals[j].State
	})

	return m
}

func elementsFromPB(m *pb.EntireWorkflow) Elements {
	var e Elements

	for _, x := range m.GetTasks() {
		e.Tasks = append(e.Tasks, Task{
			ID:              x.GetId(),
			Stamp:           x.GetStamp(),
			Name:            x.GetName(),
			MeanElapsedTime: x.GetMeanElapsedTime(),
			Depth:           x.GetDepth(),
			Parents:         x.GetParents(),
		})
	}

	for _, x := range m.GetTaskProxies() {
		e.TaskProxies = append(e.TaskProxies, TaskProxy{
			ID:          x.GetId(),
			Stamp:       x.GetStamp(),
			Task:        x.GetTask(),
			State:       x.GetState(),
			CyclePoint:  x.GetCyclePoint(),
			JobSubmits:  x.GetJobSubmits(),
			Jobs:        x.GetJobs(),
			FirstParent: x.GetFirstParent(),
			IsHeld:      x.GetIsHeld(),
		})
	}

	for _, x := range m.GetJobs() {
		e.Jobs = append(e.Jobs, Job{
			ID:            x.GetId(),
			Stamp:         x.GetStamp(),
			SubmitNum:     x.GetSubmitNum(),
			State:         x.GetState(),
			TaskProxy:     x.GetTaskProxy(),
			SubmittedTime: x.GetSubmittedTime(),
			StartedTime:   x.GetStartedTime(),
			FinishedTime:  x.GetFinishedTime(),
			JobRunnerName: x.GetJobRunnerName(),
			JobID:         x.GetJobId(),
			Platform:      x.GetPlatform(),
		})
	}

	for _, x := range m.GetFamilies() {
		e.Families = append(e.Families, Family{
			ID:            x.GetId(),
			Stamp:         x.GetStamp(),
			Name:          x.GetName(),
			Depth:         x.GetDepth(),
			Parents:       x.GetParents(),
			ChildTasks:    x.GetChildTasks(),
			ChildFamilies: x.GetChildFamilies(),
		})
	}

	for _, x := range m.GetFamilyProxies() {
		e.FamilyProxies = append(e.FamilyProxies, FamilyProxy{
			ID:            x.GetId(),
			Stamp:         x.GetStamp(),
			Family:        x.GetFamily(),
			CyclePoint:    x.GetCyclePoint(),
			State:         x.GetState(),
			ChildTasks:    x.GetChildTasks(),
			ChildFamilies: x.GetChildFamilies(),
			FirstParent:   x.GetFirstParent(),
			IsHeld:        x.GetIsHeld(),
		})
	}

	for _, x := range m.GetEdges() {
		e.Edges = append(e.Edges, Edge{
			ID:      x.GetId(),
			Stamp:   x.GetStamp(),
			Source:  x.GetSource(),
			Target:  x.GetTarget(),
			Suicide: x.GetSuicide(),
			Cond:    x.GetCond(),
		})
	}

	return e
}

func elementsToPB(e Elements) *pb.EntireWorkflow {
	m := &pb.EntireWorkflow{}

	for _, x := range e.Tasks {
		m.Tasks = append(m.Tasks, &pb.Task{
			Id:              x.ID,
			Stamp:           x.Stamp,
			Name:            x.Name,
			MeanElapsedTime: x.MeanElapsedTime,
			Depth:           x.Depth,
			Parents:         x.Parents,
		})
	}

	for _, x := range e.TaskProxies {
		m.TaskProxies = append(m.TaskProxies, &pb.TaskProxy{
			Id:          x.ID,
			Stamp:       x.Stamp,
			Task:        x.Task,
			State:       x.State,
			CyclePoint:  x.CyclePoint,
			JobSubmits:  x.JobSubmits,
			Jobs:        x.Jobs,
			FirstParent: x.FirstParent,
			IsHeld:      x.IsHeld,
		})
	}

	for _, x := range e.Jobs {
		m.Jobs = append(m.Jobs, &pb.Job{
			Id:            x.ID,
			Stamp:         x.Stamp,
			SubmitNum:     x.SubmitNum,
			State:         x.State,
			TaskProxy:     x.TaskProxy,
			SubmittedTime: x.SubmittedTime,
			StartedTime:   x.StartedTime,
			FinishedTime:  x.FinishedTime,
			JobRunnerName: x.JobRunnerName,
			JobId:         x.JobID,
			Platform:      x.Platform,
		})
	}

	for _, x := range e.Families {
		m.Families = append(m.Families, &pb.Family{
			Id:            x.ID,
			Stamp:         x.Stamp,
			Name:          x.Name,
			Depth:         x.Depth,
			Parents:       x.Parents,
			ChildTasks:    x.ChildTasks,
			ChildFamilies: x.ChildFamilies,
		})
	}

	for _, x := range e.FamilyProxies {
		m.FamilyProxies = append(m.FamilyProxies, &pb.FamilyProxy{
			Id:            x.ID,
			Stamp:         x.Stamp,
			Family:        x.Family,
			CyclePoint:    x.CyclePoint,
			State:         x.State,
			ChildTasks:    x.ChildTasks,
			ChildFamilies: x.ChildFamilies,
			FirstParent:   x.FirstParent,
			IsHeld:        x.IsHeld,
		})
	}

	for _, x := range e.Edges {
		m.Edges = append(m.Edges, &pb.Edge{
			Id:      x.ID,
			Stamp:   x.Stamp,
			Source:  x.Source,
			Target:  x.Target,
			Suicide: x.Suicide,
			Cond:    x.Cond,
		})
	}

	return m
}

func elementIDsFromPB(m *pb.ElementIDs) ElementIDs {
	return ElementIDs{
		Tasks:         m.GetTasks(),
		TaskProxies:   m.GetTaskProxies(),
		Jobs:          m.GetJobs(),
		Families:      m.GetFamilies(),
		FamilyProxies: m.GetFamilyProxies(),
		Edges:         m.GetEdges(),
	}
}

func elementIDsToPB(p ElementIDs) *pb.ElementIDs {
	return &pb.ElementIDs{
		Tasks:         p.Tasks,
		TaskProxies:   p.TaskProxies,
		Jobs:          p.Jobs,
		Families:      p.Families,
		FamilyProxies: p.FamilyProxies,
		Edges:         p.Edges,
	}
}
