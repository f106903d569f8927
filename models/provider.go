package models

import "time"

// externalDateLayout is the calendar-day format the mock external API
// delivers service dates in.
const externalDateLayout = "2006-01-02"

// Address is a provider street address as delivered by the external dataset.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// ExternalService is one service row of a provider's dataset. Dates and time
// windows stay in the external API's string form.
type ExternalService struct {
	ServiceName string         `json:"service_name"`
	ServiceID   string         `json:"service_ID"`
	Amount      float64        `json:"amount"`
	Status      ActivityStatus `json:"status"`
	Date        string         `json:"date"` // yyyy-mm-dd
	TimeStart   string         `json:"timeStart"`
	TimeEnd     string         `json:"timeEnd"`
	Description string         `json:"description"`
	Notes       string         `json:"notes"`
}

// Day returns the service date as a time. Unparseable dates yield the zero
// time, which sorts before everything and never counts as upcoming.
func (s ExternalService) Day() time.Time {
	t, err := time.Parse(externalDateLayout, s.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ServiceProvider is an external business entity surfaced only by the mock
// external dataset.
type ServiceProvider struct {
	Name     string            `json:"name"`
	Tel      string            `json:"tel"`
	Cell     string            `json:"cell"`
	LineLink string            `json:"lineLink"`
	Address  Address           `json:"address"`
	Services []ExternalService `json:"services"`
}

// ServiceDataset is the payload the mock external API answers a lookup with.
type ServiceDataset struct {
	ServiceInfo []ServiceProvider `json:"ServiceInfo"`
}

// ProviderService is a provider service row flattened together with the
// provider it came from.
type ProviderService struct {
	ExternalService
	ProviderName    string `json:"providerName"`
	ProviderContact string `json:"providerContact"`
}

// UserProfile is the external-mock profile matched 1:1 to an opaque external
// identifier. It feeds the session when an identifier-based login resolves.
type UserProfile struct {
	UUID              string     `json:"uuid"`
	Name              string     `json:"name"`
	Phone             string     `json:"phone"`
	Email             string     `json:"email"`
	Address           string     `json:"address"`
	PreferredServices []string   `json:"preferredServices"`
	TotalSpent        float64    `json:"totalSpent"`
	LastVisit         *time.Time `json:"lastVisit,omitempty"`
	RegisteredAt      time.Time  `json:"registeredAt"`
}
