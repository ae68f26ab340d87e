// Package analytics derives read-only views from a snapshot of the visit
// and approval logs. Every query is pure: it never mutates the dataset and
// never fails. Unknown ids and empty logs produce empty or zero results.
//
// Ordering: every sort is stable over log order, and grouped results are
// grouped in first-seen order before sorting, so equal keys keep the order
// in which they first appear in the log.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mrtrack/internal/domain"
)

const (
	// weekWindowDays and monthWindowDays are measured back from today, inclusive.
	weekWindowDays  = 7
	monthWindowDays = 30

	// maxMissedDoctors caps the missed-doctor names in coverage stats.
	maxMissedDoctors = 5

	unknownProductName = "Unknown"
)

// incentiveRate is the flat share of business paid to a rep as incentive.
var incentiveRate = decimal.RequireFromString("0.05")

// Dataset is a caller-owned snapshot of reference data and activity logs.
type Dataset struct {
	Doctors    []domain.Doctor
	Products   []domain.Product
	FieldReps  []domain.FieldRep
	Visits     []domain.DoctorVisit
	ShopVisits []domain.ShopVisit
	Approvals  []domain.DailyApproval
	Tasks      []domain.Task
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the wall clock used to derive today's calendar day.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLocation sets the time zone in which "today" is observed.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// Engine answers analytical queries over a Dataset.
type Engine struct {
	data  *Dataset
	clock func() time.Time
	loc   *time.Location
}

// New creates an Engine over data. A nil dataset behaves like an empty one.
func New(data *Dataset, opts ...Option) *Engine {
	if data == nil {
		data = &Dataset{}
	}
	e := &Engine{data: data, clock: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Today returns the engine's current calendar day.
func (e *Engine) Today() string {
	return domain.CalendarDay(e.clock(), e.loc)
}

// VisitHistoryForDoctor returns the doctor's visits, most recent first.
func (e *Engine) VisitHistoryForDoctor(doctorID string) []domain.DoctorVisit {
	visits := make([]domain.DoctorVisit, 0)
	for i := range e.data.Visits {
		if e.data.Visits[i].DoctorID == doctorID {
			visits = append(visits, e.data.Visits[i])
		}
	}
	sortByDateDesc(visits)
	return visits
}

// VisitsForFieldRep returns the rep's visits, most recent first. A non-empty
// date restricts the result to that calendar day.
func (e *Engine) VisitsForFieldRep(fieldRepID, date string) []domain.DoctorVisit {
	visits := make([]domain.DoctorVisit, 0)
	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if v.FieldRepID != fieldRepID {
			continue
		}
		if date != "" && v.Date != date {
			continue
		}
		visits = append(visits, *v)
	}
	sortByDateDesc(visits)
	return visits
}

// MonthlyExpenses returns the rep's expenses whose date starts with yearMonth.
// Matching is a plain string prefix test on the stored date.
func (e *Engine) MonthlyExpenses(fieldRepID, yearMonth string) []domain.DailyExpense {
	expenses := make([]domain.DailyExpense, 0)
	for i := range e.data.Approvals {
		a := &e.data.Approvals[i]
		if a.FieldRepID != fieldRepID || a.Expense == nil {
			continue
		}
		if !strings.HasPrefix(a.Date, yearMonth) {
			continue
		}
		expenses = append(expenses, *a.Expense)
	}
	return expenses
}

// ProductPromotionStats counts promoting visits per product, highest first.
// Products that were never promoted are omitted.
func (e *Engine) ProductPromotionStats() []domain.ProductPromotionStat {
	index := make(map[string]int)
	stats := make([]domain.ProductPromotionStat, 0)
	for i := range e.data.Visits {
		for _, productID := range e.data.Visits[i].ProductsPromoted {
			pos, ok := index[productID]
			if !ok {
				pos = len(stats)
				index[productID] = pos
				stats = append(stats, domain.ProductPromotionStat{ProductID: productID})
			}
			stats[pos].Count++
		}
	}

	names := e.productNames()
	for i := range stats {
		if name, ok := names[stats[i].ProductID]; ok {
			stats[i].ProductName = name
		} else {
			stats[i].ProductName = unknownProductName
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}

// DoctorBusinessStats totals business and visits per doctor, highest business first.
func (e *Engine) DoctorBusinessStats() []domain.DoctorBusinessStat {
	index := make(map[string]int)
	stats := make([]domain.DoctorBusinessStat, 0)
	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		pos, ok := index[v.DoctorID]
		if !ok {
			pos = len(stats)
			index[v.DoctorID] = pos
			stats = append(stats, domain.DoctorBusinessStat{DoctorID: v.DoctorID, DoctorName: v.DoctorName})
		}
		stats[pos].TotalBusiness += v.BusinessGenerated
		stats[pos].VisitCount++
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalBusiness > stats[j].TotalBusiness
	})
	return stats
}

// FieldRepBusinessStats totals business and visits per rep together with the
// incentive earned, highest business first.
func (e *Engine) FieldRepBusinessStats() []domain.FieldRepBusinessStat {
	index := make(map[string]int)
	stats := make([]domain.FieldRepBusinessStat, 0)
	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		pos, ok := index[v.FieldRepID]
		if !ok {
			pos = len(stats)
			index[v.FieldRepID] = pos
			stats = append(stats, domain.FieldRepBusinessStat{FieldRepID: v.FieldRepID, FieldRepName: v.FieldRepName})
		}
		stats[pos].TotalBusiness += v.BusinessGenerated
		stats[pos].VisitCount++
	}

	for i := range stats {
		stats[i].Incentive = Incentive(stats[i].TotalBusiness)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalBusiness > stats[j].TotalBusiness
	})
	return stats
}

// Incentive returns floor(totalBusiness * 5%). The product is truncated
// towards negative infinity, never rounded.
func Incentive(totalBusiness int64) int64 {
	return decimal.NewFromInt(totalBusiness).Mul(incentiveRate).Floor().IntPart()
}

// DoctorsByDistance annotates every doctor with the distance from the given
// point and orders them nearest first. Doctors without coordinates keep
// roster order after all located doctors.
func (e *Engine) DoctorsByDistance(lat, lng float64) []domain.DoctorDistance {
	located := make([]domain.DoctorDistance, 0, len(e.data.Doctors))
	var unlocated []domain.DoctorDistance
	for i := range e.data.Doctors {
		d := e.data.Doctors[i]
		if d.Location == nil {
			unlocated = append(unlocated, domain.DoctorDistance{Doctor: d})
			continue
		}
		km := HaversineDistance(lat, lng, d.Location.Lat, d.Location.Lng)
		located = append(located, domain.DoctorDistance{Doctor: d, DistanceKm: &km})
	}

	sort.SliceStable(located, func(i, j int) bool {
		return *located[i].DistanceKm < *located[j].DistanceKm
	})
	return append(located, unlocated...)
}

// WeeklyVisitCount counts the doctor's visits dated from seven days ago
// through today, both ends inclusive.
func (e *Engine) WeeklyVisitCount(doctorID string) int {
	w := e.windows()
	count := 0
	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if v.DoctorID != doctorID {
			continue
		}
		day, ok := domain.ParseDate(v.Date)
		if !ok {
			continue
		}
		if !day.Before(w.weekAgo) && !day.After(w.today) {
			count++
		}
	}
	return count
}

// LastVisitDate returns the doctor's most recent visit date. The boolean is
// false when the doctor has never been visited.
func (e *Engine) LastVisitDate(doctorID string) (string, bool) {
	history := e.VisitHistoryForDoctor(doctorID)
	if len(history) == 0 {
		return "", false
	}
	return history[0].Date, true
}

// VisitedThisWeek reports whether the doctor has any visit in the weekly window.
func (e *Engine) VisitedThisWeek(doctorID string) bool {
	return e.WeeklyVisitCount(doctorID) > 0
}

// DoctorActivity combines the weekly count, last visit and weekly flag.
func (e *Engine) DoctorActivity(doctorID string) domain.DoctorActivity {
	weekly := e.WeeklyVisitCount(doctorID)
	last, _ := e.LastVisitDate(doctorID)
	return domain.DoctorActivity{
		DoctorID:        doctorID,
		WeeklyVisits:    weekly,
		LastVisitDate:   last,
		VisitedThisWeek: weekly > 0,
	}
}

// ProductPromotionCounts counts the visits promoting a product today (exact
// day match), within the last 7 days and within the last 30 days. The week
// and month windows bound only the start, inclusively.
func (e *Engine) ProductPromotionCounts(productID string) domain.PromotionCounts {
	w := e.windows()
	counts := domain.PromotionCounts{ProductID: productID}
	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if !v.Promotes(productID) {
			continue
		}
		if v.Date == w.todayStr {
			counts.Today++
		}
		day, ok := domain.ParseDate(v.Date)
		if !ok {
			continue
		}
		if !day.Before(w.weekAgo) {
			counts.Week++
		}
		if !day.Before(w.monthAgo) {
			counts.Month++
		}
	}
	return counts
}

// FieldRepCoverageStats reports how many distinct doctors and products the rep
// has covered, and names up to five roster doctors the rep has never visited.
func (e *Engine) FieldRepCoverageStats(fieldRepID string) domain.CoverageStats {
	doctors := make(map[string]struct{})
	products := make(map[string]struct{})
	for i := range e.data.Visits {
		v := &e.data.Visits[i]
		if v.FieldRepID != fieldRepID {
			continue
		}
		doctors[v.DoctorID] = struct{}{}
		for _, p := range v.ProductsPromoted {
			products[p] = struct{}{}
		}
	}

	missed := make([]string, 0, maxMissedDoctors)
	for i := range e.data.Doctors {
		if len(missed) == maxMissedDoctors {
			break
		}
		if _, ok := doctors[e.data.Doctors[i].ID]; !ok {
			missed = append(missed, e.data.Doctors[i].Name)
		}
	}

	return domain.CoverageStats{
		FieldRepID:     fieldRepID,
		DoctorsCovered: len(doctors),
		TotalDoctors:   len(e.data.Doctors),
		ProductSpread:  len(products),
		MissedDoctors:  missed,
	}
}

func (e *Engine) productNames() map[string]string {
	names := make(map[string]string, len(e.data.Products))
	for i := range e.data.Products {
		names[e.data.Products[i].ID] = e.data.Products[i].Name
	}
	return names
}

// sortByDateDesc orders visits newest first. Visits with malformed dates sort
// after all well-formed ones; ties keep log order.
func sortByDateDesc(visits []domain.DoctorVisit) {
	keys := make(map[string]dateKey, len(visits))
	key := func(s string) dateKey {
		if k, ok := keys[s]; ok {
			return k
		}
		t, ok := domain.ParseDate(s)
		k := dateKey{t: t, valid: ok}
		keys[s] = k
		return k
	}
	sort.SliceStable(visits, func(i, j int) bool {
		a, b := key(visits[i].Date), key(visits[j].Date)
		if a.valid != b.valid {
			return a.valid
		}
		return a.t.After(b.t)
	})
}

type dateKey struct {
	t     time.Time
	valid bool
}
