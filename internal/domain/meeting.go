package domain

type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusConfirmed MeetingStatus = "confirmed"
	MeetingStatusActive    MeetingStatus = "active"
	MeetingStatusCompleted MeetingStatus = "completed"
)

// TargetGroupSize is how many members the coordinator tries to assemble.
// Below this the roll call mentions that it is still looking for people.
const TargetGroupSize = 4

type Meeting struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Members         []Profile     `json:"members"`
	Venue           Venue         `json:"venue"`
	Time            string        `json:"time"`
	Status          MeetingStatus `json:"status"`
	TotalBudget     int           `json:"total_budget"`
	CurrentPool     int           `json:"current_pool"`
	AlcoholFriendly bool          `json:"alcohol_friendly"`
}

// MemberShare is the per-member contribution used when a payment
// confirmation tops up the pool.
func (m *Meeting) MemberShare() int {
	if len(m.Members) == 0 {
		return 0
	}
	return m.TotalBudget / len(m.Members)
}

// AddToPool bumps the collected amount, capped at the total budget.
func (m *Meeting) AddToPool(amount int) {
	m.CurrentPool += amount
	if m.CurrentPool > m.TotalBudget {
		m.CurrentPool = m.TotalBudget
	}
}
