package model

// DayHours describes the opening interval for a single weekday.
// An empty Open or Close, or Closed set to true, means the day
// contributes no open interval. Times use a 12-hour clock with an
// AM/PM suffix, e.g. "9:00 AM".
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"isClosed,omitempty"`
	Note   string `json:"note,omitempty"`
}

// WeeklySchedule maps weekday names ("Sunday".."Saturday") to their
// hours. Key casing is ignored during evaluation, so fixtures may use
// "monday" as well as "Monday".
type WeeklySchedule map[string]DayHours

// OpenStatus is the result of evaluating a WeeklySchedule against a
// reference instant. It is computed fresh on every evaluation and
// never mutated.
type OpenStatus struct {
	IsOpen      bool   `json:"isOpen"`
	Message     string `json:"message"`
	OpensAt     string `json:"opensAt,omitempty"`
	ClosesAt    string `json:"closesAt,omitempty"`
	NextOpenDay string `json:"nextOpenDay,omitempty"`
}

// Business represents a directory listing with its weekly schedule.
type Business struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Phone    string         `json:"phone,omitempty"`
	Address  string         `json:"address,omitempty"`
	Website  string         `json:"website,omitempty"`
	Timezone string         `json:"timezone,omitempty"`
	Hours    WeeklySchedule `json:"hours"`
}

// BusinessWithStatus decorates a listing with its live open/closed status.
type BusinessWithStatus struct {
	Business
	Status OpenStatus `json:"status"`
}
