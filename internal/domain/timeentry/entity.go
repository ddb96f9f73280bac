package timeentry

import (
	"time"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/pkg/civil"
	"github.com/shopspring/decimal"
)

// TimeEntry - one shift worked at one location on one date
type TimeEntry struct {
	ID         string
	LocationID string
	Date       civil.Date
	Arrival    string
	Departure  string
	DailyPay   decimal.Decimal
	Notes      string
	Locked     bool
	Archived   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	LocationName *string
}

func (e TimeEntry) State() LifecycleState {
	return StateOf(e.Locked, e.Archived)
}

// Filter narrows a listing. Nil fields are not applied.
type Filter struct {
	LocationID *string
	From       *civil.Date
	To         *civil.Date
	Locked     *bool
	Archived   *bool
}

// Counts are independent predicate counts over the whole entry set.
type Counts struct {
	Locked   int `json:"locked"`
	Archived int `json:"archived"`
	Unlocked int `json:"unlocked"`
}
