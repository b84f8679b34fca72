package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack-service/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestEntryTimeByDayBucketsOnOwnerLocalDate(t *testing.T) {
	entries := &fakeEntryRepo{}
	project := newTestProject("Alpha", "America/New_York")

	// Starts 23:30 UTC on Jan 1, which is 18:30 Jan 1 in New York. The entry
	// must land in the Jan 1 bucket and not in Jan 2.
	start := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	addClosedEntry(entries, project, start, start.Add(time.Hour))

	svc := NewReportService(entries, false)

	daily, err := svc.EntryTimeByDay([]models.Project{*project}, day(2024, time.January, 1), day(2024, time.January, 1))
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, "2024-01-01", daily[0].Day)
	assert.Equal(t, 1.0, daily[0].Hours)
	assert.Equal(t, map[string]float64{"Alpha": 1.0}, daily[0].ByProject)

	daily, err = svc.EntryTimeByDay([]models.Project{*project}, day(2024, time.January, 2), day(2024, time.January, 2))
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 0.0, daily[0].Hours)
	assert.Empty(t, daily[0].ByProject)
}

func TestEntryTimeByDayPerProjectSubtotals(t *testing.T) {
	entries := &fakeEntryRepo{}
	alpha := newTestProject("Alpha", "UTC")
	bravo := newTestProject("Bravo", "UTC")

	d := day(2024, time.March, 4)
	addClosedEntry(entries, alpha, d.Add(9*time.Hour), d.Add(10*time.Hour+30*time.Minute))
	addClosedEntry(entries, alpha, d.Add(13*time.Hour), d.Add(13*time.Hour+45*time.Minute))
	addClosedEntry(entries, bravo, d.Add(11*time.Hour), d.Add(12*time.Hour))

	svc := NewReportService(entries, false)
	daily, err := svc.EntryTimeByDay([]models.Project{*alpha, *bravo}, d, d)
	require.NoError(t, err)
	require.Len(t, daily, 1)

	// 1.5h + 0.75h + 1h = 3.25h, rounded half away from zero to one decimal.
	assert.Equal(t, 3.3, daily[0].Hours)
	assert.Equal(t, map[string]float64{"Alpha": 2.3, "Bravo": 1.0}, daily[0].ByProject)
}

func TestEntryTimeByDaySkipsRunningEntries(t *testing.T) {
	entries := &fakeEntryRepo{}
	project := newTestProject("Alpha", "UTC")

	d := day(2024, time.March, 4)
	addClosedEntry(entries, project, d.Add(9*time.Hour), d.Add(10*time.Hour))
	addOpenEntry(entries, project, d.Add(11*time.Hour))

	svc := NewReportService(entries, false)
	daily, err := svc.EntryTimeByDay([]models.Project{*project}, d, d)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 1.0, daily[0].Hours)
}

func TestEntryTimeByDayCoversFullRangeInOrder(t *testing.T) {
	entries := &fakeEntryRepo{}
	project := newTestProject("Alpha", "UTC")

	monday := day(2024, time.March, 4)
	for i := 0; i < 7; i++ {
		start := monday.AddDate(0, 0, i).Add(9 * time.Hour)
		addClosedEntry(entries, project, start, start.Add(time.Duration(i+1)*time.Hour))
	}

	svc := NewReportService(entries, false)
	daily, err := svc.EntryTimeByDay([]models.Project{*project}, monday, monday.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, daily, 7)
	for i, record := range daily {
		assert.Equal(t, monday.AddDate(0, 0, i).Format(time.DateOnly), record.Day)
		assert.Equal(t, float64(i+1), record.Hours)
	}
}

func TestEntryTimeByDayDisjointRangesAddUp(t *testing.T) {
	entries := &fakeEntryRepo{}
	project := newTestProject("Alpha", "UTC")

	first := day(2024, time.March, 1)
	last := day(2024, time.March, 31)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		start := d.Add(10 * time.Hour)
		addClosedEntry(entries, project, start, start.Add(2*time.Hour))
	}

	svc := NewReportService(entries, false)
	projects := []models.Project{*project}

	sumHours := func(records []models.DayTotal) float64 {
		var total float64
		for _, r := range records {
			total += r.Hours
		}
		return total
	}

	whole, err := svc.EntryTimeByDay(projects, first, last)
	require.NoError(t, err)

	firstHalf, err := svc.EntryTimeByDay(projects, first, day(2024, time.March, 15))
	require.NoError(t, err)
	secondHalf, err := svc.EntryTimeByDay(projects, day(2024, time.March, 16), last)
	require.NoError(t, err)

	assert.InDelta(t, sumHours(whole), sumHours(firstHalf)+sumHours(secondHalf), 0.001)
}

func TestEntryTimeByDayUnknownOwnerTimezone(t *testing.T) {
	entries := &fakeEntryRepo{}
	project := newTestProject("Alpha", "Not/AZone")

	d := day(2024, time.March, 4)
	addClosedEntry(entries, project, d.Add(9*time.Hour), d.Add(10*time.Hour))

	svc := NewReportService(entries, false)
	_, err := svc.EntryTimeByDay([]models.Project{*project}, d, d)
	assert.Error(t, err)
}

func TestEntryTimeByMonthGenuineTotals(t *testing.T) {
	entries := &fakeEntryRepo{}
	project := newTestProject("Alpha", "UTC")

	// 2h in January, 3.5h in June; the half hour floors away in the
	// integer output.
	jan := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	addClosedEntry(entries, project, jan, jan.Add(2*time.Hour))
	jun := time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC)
	addClosedEntry(entries, project, jun, jun.Add(3*time.Hour+30*time.Minute))
	// An entry from another year must not count.
	prev := time.Date(2023, 6, 20, 9, 0, 0, 0, time.UTC)
	addClosedEntry(entries, project, prev, prev.Add(8*time.Hour))

	svc := NewReportService(entries, false)
	monthly, err := svc.EntryTimeByMonth([]models.Project{*project}, 2024)
	require.NoError(t, err)
	require.Len(t, monthly, 12)

	assert.Equal(t, "January", monthly[0].Month)
	assert.Equal(t, 2, monthly[0].Hours)
	assert.Equal(t, "June", monthly[5].Month)
	assert.Equal(t, 3, monthly[5].Hours)
	assert.Equal(t, "December", monthly[11].Month)
	assert.Equal(t, 0, monthly[11].Hours)
}

func TestEntryTimeByMonthSampleSeries(t *testing.T) {
	svc := NewReportService(&fakeEntryRepo{}, true)

	monthly, err := svc.EntryTimeByMonth(nil, 2023)
	require.NoError(t, err)
	require.Len(t, monthly, 12)

	want := []int{5, 10, 15, 20, 25, 30, 35, 40, 45, 0, 5, 10}
	for i, record := range monthly {
		assert.Equal(t, time.Month(i+1).String(), record.Month)
		assert.Equal(t, want[i], record.Hours)
	}
}

func TestEntryTimeByMonthNoProjects(t *testing.T) {
	svc := NewReportService(&fakeEntryRepo{}, false)

	monthly, err := svc.EntryTimeByMonth(nil, 2023)
	require.NoError(t, err)
	require.Len(t, monthly, 12)
	for _, record := range monthly {
		assert.Equal(t, 0, record.Hours)
	}
}
