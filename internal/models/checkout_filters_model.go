package models

import "time"

// CheckoutFilters contains all the possible ways to narrow down the checkout
// table. Nil fields leave that dimension unconstrained; set fields are
// combined as a conjunction.
type CheckoutFilters struct {
	Vehicle     *string
	Staff       *string
	Since       *time.Time
	ProgramTrip *bool
}
