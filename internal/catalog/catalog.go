// Package catalog holds the read-only professional directory and the coin
// packages offered for purchase. The data is seeded in-process; the rest of
// the system treats it as an external catalog and never writes to it.
package catalog

// TimeSlot is one bookable time on a given date.
type TimeSlot struct {
	Time      string `json:"time"`      // e.g. "09:00 AM"
	Available bool   `json:"available"` // Whether the slot can still be booked
}

// AvailableDate groups the slots a professional offers on one date.
type AvailableDate struct {
	Date  string     `json:"date"` // e.g. "2023-06-15"
	Slots []TimeSlot `json:"slots"`
}

// Contact details for a professional.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
}

// Professional is a catalog entry: display data plus the availability
// calendar the booking flow validates against.
type Professional struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Specialization string          `json:"specialization"`
	Bio            string          `json:"bio"`
	FullBio        string          `json:"full_bio"`
	Experience     string          `json:"experience"`
	Qualifications []string        `json:"qualifications"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"review_count"`
	AvailableDates []AvailableDate `json:"available_dates"`
	Contact        Contact         `json:"contact"`
}

// HasSlot reports whether the given date and time is offered and still
// marked available.
func (p *Professional) HasSlot(date, timeOfDay string) bool {
	for _, d := range p.AvailableDates {
		if d.Date != date {
			continue
		}
		for _, s := range d.Slots {
			if s.Time == timeOfDay {
				return s.Available
			}
		}
	}
	return false
}

// CoinPackage is a predefined top-up bundle.
type CoinPackage struct {
	Amount int64  `json:"amount"` // Coins in the package
	Label  string `json:"label"`
	Price  string `json:"price"` // Display price
}

// Finder is the lookup contract the booking orchestrator needs.
type Finder interface {
	ByID(id string) (*Professional, bool)
}

// Catalog serves the seeded professional directory.
type Catalog struct {
	professionals []Professional
	byID          map[string]*Professional
}

// New returns a catalog over the built-in seed data.
func New() *Catalog {
	return NewWith(Professionals)
}

// NewWith returns a catalog over the given entries. Tests use this to build
// small fixtures.
func NewWith(entries []Professional) *Catalog {
	c := &Catalog{professionals: entries, byID: make(map[string]*Professional, len(entries))}
	for i := range c.professionals {
		c.byID[c.professionals[i].ID] = &c.professionals[i]
	}
	return c
}

// All returns every professional in catalog order.
func (c *Catalog) All() []Professional {
	return c.professionals
}

// ByID looks a professional up by identifier.
func (c *Catalog) ByID(id string) (*Professional, bool) {
	p, ok := c.byID[id]
	return p, ok
}

var _ Finder = (*Catalog)(nil)
