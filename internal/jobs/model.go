package jobs

import "time"

// GovernmentJob is a government job posting.
type GovernmentJob struct {
	ID         string    `json:"id"`
	Company    string    `json:"company"`
	PostName   string    `json:"postName"`
	Education  string    `json:"education"`
	TotalPosts int       `json:"totalPosts"`
	Location   string    `json:"location"`
	LastDate   time.Time `json:"lastDate"`
	ApplyLink  string    `json:"applyLink"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsExpired reports whether the application deadline has passed.
func (j GovernmentJob) IsExpired(now time.Time) bool {
	return j.LastDate.Before(truncateToDay(now))
}

// DaysRemaining counts days until the deadline, zero if expired.
func (j GovernmentJob) DaysRemaining(now time.Time) int {
	if j.IsExpired(now) {
		return 0
	}
	return int(j.LastDate.Sub(truncateToDay(now)).Hours() / 24)
}

// PrivateJob is a private sector job posting.
type PrivateJob struct {
	ID            string    `json:"id"`
	CompanyName   string    `json:"companyName"`
	Role          string    `json:"role"`
	Salary        string    `json:"salary"`
	Location      string    `json:"location"`
	Qualification string    `json:"qualification"`
	Experience    string    `json:"experience"`
	ApplyLink     string    `json:"applyLink"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Status filter values for government listings.
const (
	StatusAll     = "all"
	StatusActive  = "active"
	StatusExpired = "expired"
)

// GovernmentFilter narrows government job listings.
type GovernmentFilter struct {
	Query    string
	Location string
	Status   string
}

// PrivateFilter narrows private job listings.
type PrivateFilter struct {
	Query    string
	Location string
}
