// controllers/service.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"studio-console-backend/models"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

const dateParamLayout = "2006-01-02"

// ServiceController serves the catalog, the performed-service log and the
// revenue rollups.
type ServiceController struct {
	Services  *stores.ServiceStore
	Customers *stores.CustomerStore
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Price       float64             `json:"price" binding:"required,min=0"`
	Duration    int                 `json:"duration" binding:"min=0"` // in minutes
	Category    models.BusinessType `json:"category" binding:"required"`
	IsActive    *bool               `json:"isActive"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *float64             `json:"price"`
	Duration    *int                 `json:"duration"`
	Category    *models.BusinessType `json:"category"`
	IsActive    *bool                `json:"isActive"`
}

type CreateRecordInput struct {
	CustomerID string    `json:"customerId" binding:"required"`
	ServiceID  string    `json:"serviceId" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
	Price      float64   `json:"price" binding:"required,min=0"`
	Notes      string    `json:"notes"`
}

// Create adds a catalog entry.
func (ctl *ServiceController) Create(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !input.Category.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}
	service := ctl.Services.AddService(models.Service{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    active,
	})
	c.JSON(http.StatusCreated, service)
}

// List returns the catalog; ?active=true narrows to offered services,
// ?grouped=true groups by category.
func (ctl *ServiceController) List(c *gin.Context) {
	switch {
	case c.Query("grouped") == "true":
		c.JSON(http.StatusOK, ctl.Services.ServicesByCategory())
	case c.Query("active") == "true":
		c.JSON(http.StatusOK, ctl.Services.ActiveServices())
	default:
		c.JSON(http.StatusOK, ctl.Services.Services())
	}
}

// Get returns a single catalog entry by id.
func (ctl *ServiceController) Get(c *gin.Context) {
	service, ok := ctl.Services.GetServiceByID(c.Param("id"))
	if !ok {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}
	c.JSON(http.StatusOK, service)
}

// Update merges a partial update into a catalog entry. A missing id is not an
// error.
func (ctl *ServiceController) Update(c *gin.Context) {
	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Category != nil && !input.Category.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid category")
		return
	}

	id := c.Param("id")
	ctl.Services.UpdateService(id, stores.ServiceUpdate{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    input.IsActive,
	})

	if service, ok := ctl.Services.GetServiceByID(id); ok {
		c.JSON(http.StatusOK, service)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "No matching service"})
}

// Delete removes a catalog entry. Deleting an absent id succeeds.
func (ctl *ServiceController) Delete(c *gin.Context) {
	ctl.Services.DeleteService(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// CreateRecord appends a performed-service row and bumps the customer's
// running spend figure.
func (ctl *ServiceController) CreateRecord(c *gin.Context) {
	var input CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	record := ctl.Services.AddRecord(models.ServiceRecord{
		CustomerID: input.CustomerID,
		ServiceID:  input.ServiceID,
		Date:       input.Date,
		Price:      input.Price,
		Notes:      input.Notes,
	})
	ctl.Customers.RecordVisit(input.CustomerID, input.Price, input.Date)

	c.JSON(http.StatusCreated, record)
}

// ListRecords returns the performed-service log.
func (ctl *ServiceController) ListRecords(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Services.Records())
}

// Revenue returns the rollups: today, the current month, and, when from/to
// query params are given, an inclusive date range.
func (ctl *ServiceController) Revenue(c *gin.Context) {
	now := time.Now()
	resp := gin.H{
		"dailyRevenue":   ctl.Services.DailyRevenue(now),
		"monthlyRevenue": ctl.Services.MonthlyRevenue(now),
	}

	fromRaw, toRaw := c.Query("from"), c.Query("to")
	if fromRaw != "" || toRaw != "" {
		from, err := time.ParseInLocation(dateParamLayout, fromRaw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid from date, expected yyyy-mm-dd")
			return
		}
		to, err := time.ParseInLocation(dateParamLayout, toRaw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid to date, expected yyyy-mm-dd")
			return
		}
		// Inclusive of the whole end day.
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		resp["rangeRevenue"] = ctl.Services.RevenueByDateRange(from, to)
	}

	c.JSON(http.StatusOK, resp)
}
