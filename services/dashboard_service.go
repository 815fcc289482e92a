package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"healthtrack/models"

	"gorm.io/gorm"
)

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

// MacroSet holds per-category slot counts, used both for sums and targets.
type MacroSet struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fat     int `json:"fat"`
	Veggies int `json:"veggies"`
	Junk    int `json:"junk"`
}

func (m *MacroSet) addMeal(meal models.Meal) {
	m.Protein += meal.ProteinUsed
	m.Carbs += meal.CarbsUsed
	m.Fat += meal.FatUsed
	m.Veggies += meal.VeggiesUsed
	m.Junk += meal.JunkUsed
}

func (m *MacroSet) addSet(o MacroSet) {
	m.Protein += o.Protein
	m.Carbs += o.Carbs
	m.Fat += o.Fat
	m.Veggies += o.Veggies
	m.Junk += o.Junk
}

type WeeklyDay struct {
	Date         string   `json:"date"`
	Weekday      string   `json:"weekday"`
	WeekdayShort string   `json:"weekday_short"`
	Used         MacroSet `json:"used"`
	MealCount    int      `json:"meal_count"`
}

type WeeklyView struct {
	Days        []WeeklyDay `json:"days"`
	Totals      MacroSet    `json:"totals"`
	Targets     MacroSet    `json:"targets"`
	HasFullWeek bool        `json:"has_full_week"`
}

type HistoryPoint struct {
	Date  string   `json:"date"`
	Label string   `json:"label"`
	Used  MacroSet `json:"used"`
}

type Dashboard struct {
	Today   MacroSet       `json:"today"`
	Weekly  *WeeklyView    `json:"weekly,omitempty"`
	History []HistoryPoint `json:"history,omitempty"`
}

// Build produces the three dashboard views from a single meal scan. Weekly is
// nil without an active plan, history is nil when the user never logged a
// meal; callers must not read either as "all zero".
func (s *DashboardService) Build(ctx context.Context, userID uint) (*Dashboard, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	out := &Dashboard{Today: buildTodayTotals(meals, now)}

	if user.ActivePlanID != nil {
		var plan models.Plan
		err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", *user.ActivePlanID, userID).
			First(&plan).Error
		switch {
		case err == nil:
			out.Weekly = buildWeeklyView(meals, plan, now)
		case errors.Is(err, gorm.ErrRecordNotFound):
			// dangling pointer; treat as no plan configured
		default:
			return nil, err
		}
	}

	if len(meals) > 0 {
		out.History = buildHistory(meals, now)
	}

	return out, nil
}

func buildTodayTotals(meals []models.Meal, now time.Time) MacroSet {
	start, end := dayStart(now), dayEnd(now)
	var totals MacroSet
	for _, m := range meals {
		if !m.EatenAt.Before(start) && !m.EatenAt.After(end) {
			totals.addMeal(m)
		}
	}
	return totals
}

func buildWeeklyView(meals []models.Meal, plan models.Plan, now time.Time) *WeeklyView {
	view := &WeeklyView{
		Targets: MacroSet{
			Protein: plan.ProteinSlots * 7,
			Carbs:   plan.CarbSlots * 7,
			Fat:     plan.FatSlots * 7,
			Veggies: plan.VeggieSlots * 7,
			Junk:    plan.JunkSlots * 7,
		},
	}

	// every bucket is created up front so the series stays dense
	idx := map[string]int{}
	for i := 6; i >= 0; i-- {
		d := dayStart(now.AddDate(0, 0, -i))
		key := d.Format("2006-01-02")
		idx[key] = len(view.Days)
		view.Days = append(view.Days, WeeklyDay{
			Date:         key,
			Weekday:      d.Weekday().String(),
			WeekdayShort: d.Format("Mon"),
		})
	}

	for _, m := range meals {
		key := dayStart(m.EatenAt).Format("2006-01-02")
		i, ok := idx[key]
		if !ok {
			continue
		}
		view.Days[i].Used.addMeal(m)
		view.Days[i].MealCount++
	}

	view.HasFullWeek = true
	for _, day := range view.Days {
		view.Totals.addSet(day.Used)
		if day.MealCount == 0 {
			view.HasFullWeek = false
		}
	}
	return view
}

// buildHistory returns one point per calendar day from the first meal's day
// through today, zero-filled. Callers guarantee meals is non-empty.
func buildHistory(meals []models.Meal, now time.Time) []HistoryPoint {
	first := meals[0].EatenAt
	for _, m := range meals[1:] {
		if m.EatenAt.Before(first) {
			first = m.EatenAt
		}
	}

	startDay := dayStart(first)
	today := dayStart(now)
	todayKey := today.Format("2006-01-02")

	// counted between day starts, not day ends, to avoid an off-by-one
	days := daysBetween(startDay, today)

	buckets := map[string]*MacroSet{}
	for i := 0; i <= days; i++ {
		key := startDay.AddDate(0, 0, i).Format("2006-01-02")
		buckets[key] = &MacroSet{}
	}
	for _, m := range meals {
		key := dayStart(m.EatenAt).Format("2006-01-02")
		if b, ok := buckets[key]; ok {
			b.addMeal(m)
		}
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys) // lexical == chronological for zero-padded ISO dates

	out := make([]HistoryPoint, 0, len(keys))
	for _, k := range keys {
		label := "Today"
		if k != todayKey {
			d, _ := time.ParseInLocation("2006-01-02", k, now.Location())
			label = d.Format("Jan 2")
		}
		out = append(out, HistoryPoint{Date: k, Label: label, Used: *buckets[k]})
	}
	return out
}

// daysBetween counts whole days between two day-start timestamps. Rounding
// keeps DST-shortened days from truncating to one day less.
func daysBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func dayStartIn(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
