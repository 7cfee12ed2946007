package hours

import (
	"testing"
	"time"

	"shopfront/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2026, time.January, 5, hour, minute, 0, 0, time.UTC)
}

func weekdaySchedule() model.WeeklySchedule {
	return model.WeeklySchedule{
		"Monday":    {Open: "9:00 AM", Close: "5:00 PM"},
		"Tuesday":   {Open: "9:00 AM", Close: "5:00 PM"},
		"Wednesday": {Open: "9:00 AM", Close: "5:00 PM"},
		"Thursday":  {Open: "9:00 AM", Close: "5:00 PM"},
		"Friday":    {Open: "9:00 AM", Close: "5:00 PM"},
		"Saturday":  {Closed: true},
		"Sunday":    {Closed: true},
	}
}

func TestEvaluate_OpenNow(t *testing.T) {
	status := Evaluate(weekdaySchedule(), monday(10, 0))

	assert.True(t, status.IsOpen)
	assert.Equal(t, "5:00 PM", status.ClosesAt)
	assert.Equal(t, "Open until 5:00 PM", status.Message)
	assert.Empty(t, status.OpensAt)
}

func TestEvaluate_BeforeOpeningToday(t *testing.T) {
	status := Evaluate(weekdaySchedule(), monday(8, 0))

	assert.False(t, status.IsOpen)
	assert.Equal(t, "9:00 AM", status.OpensAt)
	assert.Equal(t, "Monday", status.NextOpenDay)
	assert.Equal(t, "Closed • Opens today at 9:00 AM", status.Message)
}

func TestEvaluate_AfterClosingOpensTomorrow(t *testing.T) {
	status := Evaluate(weekdaySchedule(), monday(18, 0))

	assert.False(t, status.IsOpen)
	assert.Equal(t, "9:00 AM", status.OpensAt)
	assert.Equal(t, "Tuesday", status.NextOpenDay)
	assert.Contains(t, status.Message, "tomorrow")
	assert.Equal(t, "Closed • Opens tomorrow at 9:00 AM", status.Message)
}

func TestEvaluate_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		wantOpen bool
	}{
		{name: "exactly at opening minute is open", ref: monday(9, 0), wantOpen: true},
		{name: "one minute before closing is open", ref: monday(16, 59), wantOpen: true},
		{name: "exactly at closing minute is closed", ref: monday(17, 0), wantOpen: false},
		{name: "one minute before opening is closed", ref: monday(8, 59), wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := Evaluate(weekdaySchedule(), tt.ref)
			assert.Equal(t, tt.wantOpen, status.IsOpen)
		})
	}
}

func TestEvaluate_SkipsToLaterDay(t *testing.T) {
	schedule := model.WeeklySchedule{
		"Monday":   {Open: "9:00 AM", Close: "5:00 PM"},
		"Thursday": {Open: "10:00 AM", Close: "2:00 PM"},
	}

	// Monday evening: Tuesday and Wednesday have no hours, so the next
	// opening is Thursday and the message uses "on {day}".
	status := Evaluate(schedule, monday(20, 0))

	require.False(t, status.IsOpen)
	assert.Equal(t, "Thursday", status.NextOpenDay)
	assert.Equal(t, "10:00 AM", status.OpensAt)
	assert.Equal(t, "Closed • Opens on Thursday at 10:00 AM", status.Message)
}

func TestEvaluate_WrapsAroundTheWeek(t *testing.T) {
	// Only Monday is open; Monday evening must wrap seven days forward
	// back to Monday itself.
	schedule := model.WeeklySchedule{
		"Monday": {Open: "9:00 AM", Close: "5:00 PM"},
	}

	status := Evaluate(schedule, monday(18, 0))

	require.False(t, status.IsOpen)
	assert.Equal(t, "Monday", status.NextOpenDay)
	assert.Equal(t, "Closed • Opens on Monday at 9:00 AM", status.Message)
}

func TestEvaluate_AllDaysClosed(t *testing.T) {
	schedule := model.WeeklySchedule{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		schedule[d.String()] = model.DayHours{Closed: true}
	}

	for hour := 0; hour < 24; hour += 6 {
		status := Evaluate(schedule, monday(hour, 30))
		assert.False(t, status.IsOpen)
		assert.Equal(t, "Temporarily closed", status.Message)
		assert.Empty(t, status.OpensAt)
		assert.Empty(t, status.NextOpenDay)
	}
}

func TestEvaluate_ClosedFlagBeatsPopulatedTimes(t *testing.T) {
	schedule := model.WeeklySchedule{
		"Monday":  {Open: "9:00 AM", Close: "5:00 PM", Closed: true},
		"Tuesday": {Open: "8:00 AM", Close: "4:00 PM"},
	}

	status := Evaluate(schedule, monday(10, 0))

	require.False(t, status.IsOpen)
	assert.Equal(t, "Tuesday", status.NextOpenDay)
	assert.Contains(t, status.Message, "tomorrow")
}

func TestEvaluate_MalformedTimesAreSkipped(t *testing.T) {
	tests := []struct {
		name  string
		hours model.DayHours
	}{
		{name: "missing meridiem", hours: model.DayHours{Open: "9:00", Close: "5:00 PM"}},
		{name: "non-numeric hour", hours: model.DayHours{Open: "nine:00 AM", Close: "5:00 PM"}},
		{name: "non-numeric minute", hours: model.DayHours{Open: "9:xx AM", Close: "5:00 PM"}},
		{name: "hour out of range", hours: model.DayHours{Open: "13:00 AM", Close: "5:00 PM"}},
		{name: "minute out of range", hours: model.DayHours{Open: "9:75 AM", Close: "5:00 PM"}},
		{name: "bad meridiem", hours: model.DayHours{Open: "9:00 XM", Close: "5:00 PM"}},
		{name: "empty open", hours: model.DayHours{Open: "", Close: "5:00 PM"}},
		{name: "garbage", hours: model.DayHours{Open: "soon", Close: "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := model.WeeklySchedule{
				"Monday":  tt.hours,
				"Tuesday": {Open: "9:00 AM", Close: "5:00 PM"},
			}

			// Must not panic and must treat Monday as having no interval.
			status := Evaluate(schedule, monday(10, 0))

			assert.False(t, status.IsOpen)
			assert.Equal(t, "Tuesday", status.NextOpenDay)
		})
	}
}

func TestEvaluate_TwelveHourConversion(t *testing.T) {
	schedule := model.WeeklySchedule{
		"Monday": {Open: "12:00 PM", Close: "12:00 AM"},
	}

	// Noon through late evening falls inside [12:00 PM, 12:00 AM).
	// Midnight close parses to minute 0, so the interval is empty in
	// practice; verify noon itself reports closed rather than crashing.
	status := Evaluate(schedule, monday(12, 0))
	assert.False(t, status.IsOpen)

	schedule["Monday"] = model.DayHours{Open: "12:00 AM", Close: "11:59 PM"}
	status = Evaluate(schedule, monday(12, 0))
	assert.True(t, status.IsOpen)
	assert.Equal(t, "Open until 11:59 PM", status.Message)
}

func TestEvaluate_CaseInsensitiveDayKeys(t *testing.T) {
	schedule := model.WeeklySchedule{
		"monday":  {Open: "9:00 AM", Close: "5:00 PM"},
		"tuesday": {Open: "9:00 AM", Close: "5:00 PM"},
	}

	status := Evaluate(schedule, monday(10, 0))
	assert.True(t, status.IsOpen)
	assert.Equal(t, "Open until 5:00 PM", status.Message)

	// The forward scan matches lowercase keys too.
	status = Evaluate(schedule, monday(18, 0))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Closed • Opens tomorrow at 9:00 AM", status.Message)
}

func TestEvaluate_CaseInsensitiveMeridiem(t *testing.T) {
	schedule := model.WeeklySchedule{
		"Monday": {Open: "9:00 am", Close: "5:00 pm"},
	}

	status := Evaluate(schedule, monday(10, 0))

	assert.True(t, status.IsOpen)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		minutes int
		ok      bool
	}{
		{input: "9:00 AM", minutes: 9 * 60, ok: true},
		{input: "12:00 AM", minutes: 0, ok: true},
		{input: "12:30 PM", minutes: 12*60 + 30, ok: true},
		{input: "5:00 PM", minutes: 17 * 60, ok: true},
		{input: "11:59 PM", minutes: 23*60 + 59, ok: true},
		{input: "9:00am", ok: false},
		{input: "17:00 PM", ok: false},
		{input: "0:30 AM", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			minutes, ok := parseClock(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minutes, minutes)
			}
		})
	}
}
