package rasteredit

import "time"

// Meta is the metadata recorded alongside every Step performed, independent
// of what the step actually did.
type Meta struct {
	Timestamp time.Time
	User      string
}

// Moment is a single atomic unit of editing history: one performed Step
// plus the metadata describing when and by whom.
type Moment struct {
	Meta Meta
	Data Step
}
