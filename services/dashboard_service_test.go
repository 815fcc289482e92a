package services

import (
	"testing"
	"time"

	"healthtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealOn(t time.Time, protein, carbs int) models.Meal {
	return models.Meal{EatenAt: t, ProteinUsed: protein, CarbsUsed: carbs}
}

func TestBuildTodayTotals(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	meals := []models.Meal{
		mealOn(now.Add(-2*time.Hour), 2, 1),                  // today
		mealOn(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 1, 0), // midnight boundary, still today
		mealOn(now.AddDate(0, 0, -1), 5, 5),                  // yesterday
		mealOn(now.Add(5*time.Hour), 3, 0),                   // later today
	}

	totals := buildTodayTotals(meals, now)
	assert.Equal(t, 6, totals.Protein)
	assert.Equal(t, 1, totals.Carbs)
	assert.Zero(t, totals.Fat)
}

func TestBuildTodayTotalsEmpty(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	totals := buildTodayTotals(nil, now)
	assert.Equal(t, MacroSet{}, totals)
}

func TestBuildWeeklyViewDense(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	plan := models.Plan{ProteinSlots: 4, CarbSlots: 3, FatSlots: 2, VeggieSlots: 5, JunkSlots: 1}

	// meals only on days 1, 3, 5 of the window
	meals := []models.Meal{
		mealOn(now.AddDate(0, 0, -6), 1, 1),
		mealOn(now.AddDate(0, 0, -4), 2, 0),
		mealOn(now.AddDate(0, 0, -2), 3, 2),
	}

	view := buildWeeklyView(meals, plan, now)
	require.Len(t, view.Days, 7)

	// one bucket per day, chronological, no gaps
	for i, day := range view.Days {
		expected := now.AddDate(0, 0, i-6).Format("2006-01-02")
		assert.Equal(t, expected, day.Date)
	}

	assert.False(t, view.HasFullWeek)
	assert.Equal(t, 6, view.Totals.Protein)
	assert.Equal(t, 3, view.Totals.Carbs)

	// targets are the plan's daily slots over seven days
	assert.Equal(t, 28, view.Targets.Protein)
	assert.Equal(t, 21, view.Targets.Carbs)
	assert.Equal(t, 7, view.Targets.Junk)

	// weekday labels come in both forms
	assert.Equal(t, "Monday", view.Days[6].Weekday)
	assert.Equal(t, "Mon", view.Days[6].WeekdayShort)
}

func TestBuildWeeklyViewFullWeek(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	plan := models.Plan{ProteinSlots: 1}

	var meals []models.Meal
	for i := 0; i < 7; i++ {
		meals = append(meals, mealOn(now.AddDate(0, 0, -i), 1, 0))
	}

	view := buildWeeklyView(meals, plan, now)
	assert.True(t, view.HasFullWeek)
	assert.Equal(t, 7, view.Totals.Protein)
}

func TestBuildWeeklyViewIgnoresOutOfWindowMeals(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealOn(now.AddDate(0, 0, -7), 9, 9), // one day before the window
		mealOn(now.AddDate(0, 0, 1), 9, 9),  // tomorrow
	}

	view := buildWeeklyView(meals, models.Plan{}, now)
	assert.Equal(t, MacroSet{}, view.Totals)
	assert.False(t, view.HasFullWeek)
}

func TestBuildHistorySingleDay(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	meals := []models.Meal{mealOn(now.Add(-1*time.Hour), 2, 0)}

	history := buildHistory(meals, now)
	require.Len(t, history, 1)
	assert.Equal(t, "2025-03-10", history[0].Date)
	assert.Equal(t, "Today", history[0].Label)
	assert.Equal(t, 2, history[0].Used.Protein)
}

func TestBuildHistoryDenseAndLabeled(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealOn(time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC), 1, 0),
		mealOn(time.Date(2025, 3, 5, 20, 0, 0, 0, time.UTC), 0, 3),
		mealOn(now, 2, 2),
	}

	history := buildHistory(meals, now)
	require.Len(t, history, 10) // Mar 1 .. Mar 10 inclusive

	// dense: every calendar day present, in order
	for i, point := range history {
		expected := time.Date(2025, 3, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		assert.Equal(t, expected, point.Date)
	}

	assert.Equal(t, "Mar 1", history[0].Label)
	assert.Equal(t, "Mar 5", history[4].Label)
	assert.Equal(t, "Today", history[9].Label)

	assert.Equal(t, 1, history[0].Used.Protein)
	assert.Equal(t, MacroSet{}, history[1].Used) // zero-filled gap day
	assert.Equal(t, 3, history[4].Used.Carbs)
	assert.Equal(t, 2, history[9].Used.Protein)
}

func TestBuildHistoryFirstMealNotOldestInSlice(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	meals := []models.Meal{
		mealOn(now, 1, 0),
		mealOn(time.Date(2025, 3, 8, 8, 0, 0, 0, time.UTC), 1, 0),
	}

	history := buildHistory(meals, now)
	require.Len(t, history, 3)
	assert.Equal(t, "2025-03-08", history[0].Date)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, daysBetween(start, start))
	assert.Equal(t, 9, daysBetween(start, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, daysBetween(start, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDayBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 10, 13, 45, 12, 999, time.UTC)

	start := dayStart(now)
	end := dayEnd(now)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.True(t, end.Before(start.AddDate(0, 0, 1)))
}
