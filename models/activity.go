package models

import "time"

// ActivityType classifies a logged customer interaction.
type ActivityType string

const (
	ActivityService      ActivityType = "service"
	ActivityAppointment  ActivityType = "appointment"
	ActivityPayment      ActivityType = "payment"
	ActivityConsultation ActivityType = "consultation"
)

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	StatusCompleted ActivityStatus = "completed"
	StatusScheduled ActivityStatus = "scheduled"
	StatusCancelled ActivityStatus = "cancelled"
)

// CustomerActivity is a logged interaction with a customer: a performed
// service, an appointment, a payment or a consultation.
type CustomerActivity struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customerId"`
	Type        ActivityType   `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount,omitempty"`
	Date        time.Time      `json:"date"`
	Status      ActivityStatus `json:"status"`
	ServiceID   string         `json:"serviceId,omitempty"`
	Notes       string         `json:"notes,omitempty"`
}
