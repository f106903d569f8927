// Package stores holds the console's state stores: in-memory collections with
// derived views computed on read. Stores are constructed in main and injected
// into their consumers; they hold no references to each other except the auth
// store delegating external logins to the service-data gateway.
package stores

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"studio-console-backend/models"
)

const defaultPageSize = 10

// CustomerStore holds the customer collection plus the list-view state
// (search, business-type filter, pagination) the console drives.
type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer

	page         int
	itemsPerPage int
	searchQuery  string
	businessType models.BusinessType
}

// NewCustomerStore returns an empty store on page 1 with the default page
// size.
func NewCustomerStore() *CustomerStore {
	return &CustomerStore{page: 1, itemsPerPage: defaultPageSize}
}

// Seed appends preassembled records, keeping their ids as given.
func (s *CustomerStore) Seed(customers []models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customers...)
}

// Add stores a new customer. Id, creation time and the spend counter are
// assigned here regardless of what the input carries.
func (s *CustomerStore) Add(c models.Customer) models.Customer {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.TotalSpent = 0
	c.LastVisit = nil

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, c)
	return c
}

// CustomerUpdate is a partial customer mutation; nil fields are left alone.
type CustomerUpdate struct {
	Name            *string
	Phone           *string
	Email           *string
	Address         *string
	Age             *int
	Height          *int
	Weight          *int
	Occupation      *string
	HairType        *string
	HairColor       *string
	SkinCondition   *string
	BusinessType    *models.BusinessType
	Notes           *string
	LastVisit       *time.Time
	TotalSpent      *float64
	FieldVisibility map[string]bool
}

// Update merges a partial update into the record with the given id. Missing
// ids are silently ignored.
func (s *CustomerStore) Update(id string, updates CustomerUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID != id {
			continue
		}
		c := &s.customers[i]
		if updates.Name != nil {
			c.Name = *updates.Name
		}
		if updates.Phone != nil {
			c.Phone = *updates.Phone
		}
		if updates.Email != nil {
			c.Email = *updates.Email
		}
		if updates.Address != nil {
			c.Address = *updates.Address
		}
		if updates.Age != nil {
			c.Age = *updates.Age
		}
		if updates.Height != nil {
			c.Height = *updates.Height
		}
		if updates.Weight != nil {
			c.Weight = *updates.Weight
		}
		if updates.Occupation != nil {
			c.Occupation = *updates.Occupation
		}
		if updates.HairType != nil {
			c.HairType = *updates.HairType
		}
		if updates.HairColor != nil {
			c.HairColor = *updates.HairColor
		}
		if updates.SkinCondition != nil {
			c.SkinCondition = *updates.SkinCondition
		}
		if updates.BusinessType != nil {
			c.BusinessType = *updates.BusinessType
		}
		if updates.Notes != nil {
			c.Notes = *updates.Notes
		}
		if updates.LastVisit != nil {
			c.LastVisit = updates.LastVisit
		}
		if updates.TotalSpent != nil {
			c.TotalSpent = *updates.TotalSpent
		}
		if updates.FieldVisibility != nil {
			c.FieldVisibility = updates.FieldVisibility
		}
		return
	}
}

// Delete removes the record with the given id. Missing ids are silently
// ignored.
func (s *CustomerStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return
		}
	}
}

// GetByID returns the customer with the given id.
func (s *CustomerStore) GetByID(id string) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// RecordVisit bumps the running spend figure and last-visit timestamp after a
// service was performed. Missing ids are silently ignored.
func (s *CustomerStore) RecordVisit(id string, amount float64, visitedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].TotalSpent += amount
			v := visitedAt
			s.customers[i].LastVisit = &v
			return
		}
	}
}

// SetSearchQuery sets the case-insensitive substring matched against name,
// phone and email. Resets to page 1.
func (s *CustomerStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.page = 1
}

// SetBusinessTypeFilter restricts the list to one business type; the empty
// value clears the filter. Resets to page 1.
func (s *CustomerStore) SetBusinessTypeFilter(businessType models.BusinessType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businessType = businessType
	s.page = 1
}

// SetPage moves to the given page (clamped to 1).
func (s *CustomerStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.page = page
}

// SetItemsPerPage sets the page size (clamped to 1).
func (s *CustomerStore) SetItemsPerPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 1 {
		n = 1
	}
	s.itemsPerPage = n
}

func (s *CustomerStore) filteredLocked() []models.Customer {
	filtered := make([]models.Customer, 0, len(s.customers))
	query := strings.ToLower(s.searchQuery)

	for _, c := range s.customers {
		if query != "" {
			match := strings.Contains(strings.ToLower(c.Name), query) ||
				strings.Contains(c.Phone, query) ||
				strings.Contains(strings.ToLower(c.Email), query)
			if !match {
				continue
			}
		}
		if s.businessType != "" && c.BusinessType != s.businessType {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Filtered returns the customers matching the active search and filter.
func (s *CustomerStore) Filtered() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filteredLocked()
}

// Paginated returns the current page slice of the filtered set.
func (s *CustomerStore) Paginated() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	start := (s.page - 1) * s.itemsPerPage
	if start >= len(filtered) {
		return []models.Customer{}
	}
	end := start + s.itemsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages returns the page count over the filtered set.
func (s *CustomerStore) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(math.Ceil(float64(len(s.filteredLocked())) / float64(s.itemsPerPage)))
}

// TotalCustomers returns the size of the full (unfiltered) collection.
func (s *CustomerStore) TotalCustomers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.customers)
}

// TotalRevenue sums the running spend figure over all customers.
func (s *CustomerStore) TotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	for _, c := range s.customers {
		sum += c.TotalSpent
	}
	return sum
}

// All returns a copy of the full collection.
func (s *CustomerStore) All() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
