package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// ServiceDataController serves the customer-facing views over the mock
// external gateway.
type ServiceDataController struct {
	Gateway *stores.ServiceDataStore
}

type ReloadInput struct {
	ExternalID string `json:"externalId" binding:"required"`
}

type UpdateExternalProfileInput struct {
	Name              *string  `json:"name"`
	Phone             *string  `json:"phone"`
	Email             *string  `json:"email"`
	Address           *string  `json:"address"`
	PreferredServices []string `json:"preferredServices"`
}

// Reload re-resolves the provider dataset for an external identifier.
func (ctl *ServiceDataController) Reload(c *gin.Context) {
	var input ReloadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	profile, err := ctl.Gateway.LoadDataByID(c.Request.Context(), input.ExternalID)
	if err != nil {
		if errors.Is(err, stores.ErrProfileNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No profile for this identifier")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Services returns the flattened provider service list, partitioned views
// included.
func (ctl *ServiceDataController) Services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"all":        ctl.Gateway.AllServices(),
		"completed":  ctl.Gateway.CompletedServices(),
		"scheduled":  ctl.Gateway.ScheduledServices(),
		"totalSpent": ctl.Gateway.TotalSpent(),
	})
}

// Profile returns the loaded external profile.
func (ctl *ServiceDataController) Profile(c *gin.Context) {
	profile := ctl.Gateway.Profile()
	if profile == nil {
		utils.RespondWithError(c, http.StatusNotFound, "No profile loaded")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile merges a partial update into the loaded external profile.
func (ctl *ServiceDataController) UpdateProfile(c *gin.Context) {
	var input UpdateExternalProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	ctl.Gateway.UpdateProfile(stores.ProfileUpdate{
		Name:              input.Name,
		Phone:             input.Phone,
		Email:             input.Email,
		Address:           input.Address,
		PreferredServices: input.PreferredServices,
	})

	profile := ctl.Gateway.Profile()
	if profile == nil {
		utils.RespondWithError(c, http.StatusNotFound, "No profile loaded")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Stats returns the monthly aggregate over the loaded services. Query
// params: year, month (defaults: current month).
func (ctl *ServiceDataController) Stats(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = n
	}
	if raw := c.Query("month"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 12 {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid month")
			return
		}
		month = time.Month(n)
	}

	c.JSON(http.StatusOK, ctl.Gateway.MonthlyStats(year, month))
}

// Recent returns the loaded services most recent first.
func (ctl *ServiceDataController) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Gateway.RecentActivities(limitParam(c, 5)))
}

// Upcoming returns scheduled services at or after now, soonest first.
func (ctl *ServiceDataController) Upcoming(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Gateway.UpcomingAppointments(time.Now(), limitParam(c, 5)))
}
