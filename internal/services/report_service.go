package services

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"timetrack-service/internal/localization"
	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
)

// windowPadding widens day-range queries so entries that are UTC-adjacent to
// a range boundary but land inside the range after timezone conversion are
// still fetched.
const windowPadding = 2 // days

// ReportService computes the per-day and per-month time aggregations shown in
// the calendar and project detail views.
type ReportService struct {
	entries repository.TimeEntryRepository

	// sampleMonthly reproduces the legacy monthly series (month*5 mod 50)
	// instead of genuine totals, for dashboards built against it.
	sampleMonthly bool
}

// NewReportService creates a new ReportService on top of the given entry repository.
func NewReportService(entries repository.TimeEntryRepository, sampleMonthly bool) *ReportService {
	return &ReportService{
		entries:       entries,
		sampleMonthly: sampleMonthly,
	}
}

// EntryTimeByDay returns one record per calendar day in [startDay, endDay]
// (inclusive) with the total hours tracked across the given projects that day
// and per-project subtotals. An entry counts toward the day on which it
// started in its owner's timezone. Entries still running are skipped, since
// no duration can be computed for them.
func (s *ReportService) EntryTimeByDay(projects []models.Project, startDay, endDay time.Time) ([]models.DayTotal, error) {
	startDay = truncateToDay(startDay)
	endDay = truncateToDay(endDay)

	entries, err := s.fetchWindow(projects, startDay, endDay)
	if err != nil {
		return nil, err
	}

	var daily []models.DayTotal
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		var seconds float64
		byProject := make(map[string]float64)
		for i := range entries {
			entry := &entries[i]
			localDate, err := entryLocalDate(entry)
			if err != nil {
				return nil, err
			}
			if localDate.Equal(day) {
				duration, ok := entry.Duration()
				if !ok {
					continue
				}
				seconds += duration.Seconds()
				byProject[entry.Project.Name] += duration.Seconds()
			} else if localDate.After(day) {
				// Entries are ordered by start time, so the rest belong
				// to later days.
				break
			}
		}

		rounded := make(map[string]float64, len(byProject))
		for name, secs := range byProject {
			rounded[name] = roundHours(secs)
		}
		daily = append(daily, models.DayTotal{
			Day:       day.Format(time.DateOnly),
			Hours:     roundHours(seconds),
			ByProject: rounded,
		})
	}
	return daily, nil
}

// EntryTimeByMonth returns one record per calendar month of the given year,
// January through December, with the integer hours tracked across the given
// projects. A zero year defaults to the current UTC year.
func (s *ReportService) EntryTimeByMonth(projects []models.Project, year int) ([]models.MonthTotal, error) {
	if year == 0 {
		year = time.Now().UTC().Year()
	}

	var entries []models.TimeEntry
	if len(projects) > 0 {
		var err error
		entries, err = s.entries.FindEntriesInYear(projectIDs(projects), year)
		if err != nil {
			return nil, errors.Wrap(err, "fetching entries for year")
		}
	}

	monthly := make([]models.MonthTotal, 0, 12)
	for month := 1; month <= 12; month++ {
		var seconds float64
		for i := range entries {
			entry := &entries[i]
			if int(entry.StartTime.UTC().Month()) != month {
				continue
			}
			duration, ok := entry.Duration()
			if !ok {
				continue
			}
			seconds += duration.Seconds()
		}

		hours := int(seconds / 3600)
		if s.sampleMonthly {
			hours = (month * 5) % 50
		}
		monthly = append(monthly, models.MonthTotal{
			Month: time.Month(month).String(),
			Hours: hours,
		})
	}
	return monthly, nil
}

// fetchWindow loads the entries of the given projects whose start time falls
// in the padded window around [startDay, endDay], sorted by start time.
func (s *ReportService) fetchWindow(projects []models.Project, startDay, endDay time.Time) ([]models.TimeEntry, error) {
	if len(projects) == 0 {
		return nil, nil
	}
	from := startDay.AddDate(0, 0, -windowPadding)
	to := endDay.AddDate(0, 0, windowPadding)
	entries, err := s.entries.FindEntriesInWindow(projectIDs(projects), from, to)
	if err != nil {
		return nil, errors.Wrap(err, "fetching entries in window")
	}
	return entries, nil
}

// entryLocalDate returns the calendar date (midnight UTC) on which the entry
// started in its owner's timezone.
func entryLocalDate(entry *models.TimeEntry) (time.Time, error) {
	var owner *models.User
	if entry.Project != nil {
		owner = entry.Project.Owner
	}
	local, err := localization.ConvertToUserTime(entry.StartTime, owner)
	if err != nil {
		return time.Time{}, err
	}
	return truncateToDay(local), nil
}

func projectIDs(projects []models.Project) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(projects))
	for i := range projects {
		ids = append(ids, projects[i].ID)
	}
	return ids
}

// truncateToDay drops the time-of-day fields, keeping only the calendar date
// as a midnight UTC instant so dates from different zones compare directly.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// roundHours converts seconds to hours rounded to one decimal place.
func roundHours(seconds float64) float64 {
	return math.Round(seconds/3600*10) / 10
}
