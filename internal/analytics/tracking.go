package analytics

import (
	"sort"
	"strings"

	"mrtrack/internal/domain"
)

// DailyTracking reports every rep's activity on date in roster order. A rep
// is working when they logged any doctor or shop visit that day. Punch times
// ignore visits without a well-formed HH:MM time. The visit logs only cover
// the reps that pass filter; Working counts the whole roster.
func (e *Engine) DailyTracking(date string, filter domain.TrackingFilter) domain.DailyTracking {
	out := domain.DailyTracking{
		Date:         date,
		Reps:         make([]domain.RepDay, 0, len(e.data.FieldReps)),
		DoctorVisits: make([]domain.DoctorVisit, 0),
		ShopVisits:   make([]domain.ShopVisit, 0),
	}

	days := make(map[string]*domain.RepDay, len(e.data.FieldReps))
	rows := make([]domain.RepDay, len(e.data.FieldReps))
	for i := range e.data.FieldReps {
		rep := &e.data.FieldReps[i]
		rows[i] = domain.RepDay{FieldRepID: rep.ID, FieldRepName: rep.Name, Territory: rep.Territory}
		days[rep.ID] = &rows[i]
	}

	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if v.Date != date {
			continue
		}
		if d, ok := days[v.FieldRepID]; ok {
			d.DoctorVisits++
			punch(d, v.Time)
		}
	}
	for i := range e.data.ShopVisits {
		v := &e.data.ShopVisits[i]
		if v.Date != date {
			continue
		}
		if d, ok := days[v.FieldRepID]; ok {
			d.ShopVisits++
			punch(d, v.Time)
		}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	shown := make(map[string]struct{}, len(rows))
	for i := range rows {
		d := &rows[i]
		switch {
		case !e.data.FieldReps[i].IsActive():
			d.Status = domain.TrackingInactive
		case d.DoctorVisits+d.ShopVisits > 0:
			d.Status = domain.TrackingWorking
			out.Working++
		default:
			d.Status = domain.TrackingOff
		}

		if filter.Territory != "" && !strings.EqualFold(d.Territory, filter.Territory) {
			continue
		}
		if filter.Status != "" && d.Status != filter.Status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(d.FieldRepName), search) {
			continue
		}
		out.Reps = append(out.Reps, *d)
		shown[d.FieldRepID] = struct{}{}
	}

	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if _, ok := shown[v.FieldRepID]; ok && v.Date == date {
			out.DoctorVisits = append(out.DoctorVisits, *v)
		}
	}
	for i := range e.data.ShopVisits {
		v := &e.data.ShopVisits[i]
		if _, ok := shown[v.FieldRepID]; ok && v.Date == date {
			out.ShopVisits = append(out.ShopVisits, *v)
		}
	}
	sort.SliceStable(out.DoctorVisits, func(i, j int) bool {
		return laterTime(out.DoctorVisits[i].Time, out.DoctorVisits[j].Time)
	})
	sort.SliceStable(out.ShopVisits, func(i, j int) bool {
		return laterTime(out.ShopVisits[i].Time, out.ShopVisits[j].Time)
	})
	return out
}

func punch(d *domain.RepDay, at string) {
	if !domain.ValidTime(at) {
		return
	}
	// HH:MM compares correctly as a string once it is well-formed.
	if d.FirstPunch == "" || at < d.FirstPunch {
		d.FirstPunch = at
	}
	if at > d.LastPunch {
		d.LastPunch = at
	}
}

// laterTime orders well-formed times newest first, then everything else.
func laterTime(a, b string) bool {
	va, vb := domain.ValidTime(a), domain.ValidTime(b)
	if va != vb {
		return va
	}
	return va && a > b
}

// Tasks returns the tasks matching filter, newest assignment first. Counts
// honour filter.FieldRepID but ignore Status and Search, so the tabs always
// show the whole of the caller's scope.
func (e *Engine) Tasks(filter domain.TaskFilter) domain.TaskList {
	list := domain.TaskList{Tasks: make([]domain.Task, 0)}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for i := len(e.data.Tasks) - 1; i >= 0; i-- {
		t := &e.data.Tasks[i]
		if filter.FieldRepID != "" && t.FieldRepID != filter.FieldRepID {
			continue
		}
		list.Counts.Total++
		switch t.Status {
		case domain.TaskStatusPending:
			list.Counts.Pending++
		case domain.TaskStatusCompleted:
			list.Counts.Completed++
		}

		if filter.Status != "" && t.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.FieldRepName), search) &&
			!strings.Contains(strings.ToLower(t.DoctorName), search) {
			continue
		}
		list.Tasks = append(list.Tasks, *t)
	}
	return list
}

// TaskAgenda splits a rep's tasks into today's (any status) and upcoming
// pending ones. Both are ordered by date then time; tasks without a time
// come last within their day.
func (e *Engine) TaskAgenda(fieldRepID string) domain.TaskAgenda {
	today := e.Today()
	agenda := domain.TaskAgenda{
		Date:     today,
		Today:    make([]domain.Task, 0),
		Upcoming: make([]domain.Task, 0),
	}
	for i := range e.data.Tasks {
		t := &e.data.Tasks[i]
		if t.FieldRepID != fieldRepID {
			continue
		}
		switch {
		case t.Date == today:
			agenda.Today = append(agenda.Today, *t)
			if t.Status == domain.TaskStatusPending {
				agenda.PendingToday++
			}
		case t.Date > today && t.Status == domain.TaskStatusPending:
			agenda.Upcoming = append(agenda.Upcoming, *t)
		}
	}
	sortTasks(agenda.Today)
	sortTasks(agenda.Upcoming)
	return agenda
}

func sortTasks(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := &tasks[i], &tasks[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if (a.Time == "") != (b.Time == "") {
			return a.Time != ""
		}
		return a.Time < b.Time
	})
}
