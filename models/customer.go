package models

import "time"

// BusinessType tags a customer or catalog entry with the studio line it
// belongs to.
type BusinessType string

const (
	BusinessBeauty  BusinessType = "beauty"
	BusinessHair    BusinessType = "hair"
	BusinessFitness BusinessType = "fitness"
)

// Valid reports whether b is one of the known business types.
func (b BusinessType) Valid() bool {
	return b == BusinessBeauty || b == BusinessHair || b == BusinessFitness
}

// Customer is a studio customer record. TotalSpent is an independent running
// figure; it is not reconciled against the service-record log.
type Customer struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email"`
	Address       string       `json:"address"`
	Age           int          `json:"age"`
	Height        int          `json:"height"` // cm
	Weight        int          `json:"weight"` // kg
	Occupation    string       `json:"occupation"`
	HairType      string       `json:"hairType"`
	HairColor     string       `json:"hairColor"`
	SkinCondition string       `json:"skinCondition"`
	BusinessType  BusinessType `json:"businessType"`
	Notes         string       `json:"notes"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastVisit     *time.Time   `json:"lastVisit,omitempty"`
	TotalSpent    float64      `json:"totalSpent"`

	// FieldVisibility marks fields the customer has opted to hide from
	// their own profile view (field name -> visible). Absent keys are
	// treated as visible.
	FieldVisibility map[string]bool `json:"fieldVisibility,omitempty"`
}
