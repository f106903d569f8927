package models

import "time"

// Service is a catalog offering. Identity is immutable; price and the active
// flag change over time.
type Service struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Duration    int          `json:"duration"` // minutes
	Category    BusinessType `json:"category"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// ServiceRecord is one row of the append-only performed-service log. Revenue
// rollups sum the Price captured here; later catalog price changes are not
// reconciled back.
type ServiceRecord struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	ServiceID  string    `json:"serviceId"`
	Date       time.Time `json:"date"`
	Price      float64   `json:"price"`
	Notes      string    `json:"notes,omitempty"`
}
