package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"studio-console-backend/models"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// ActivityController serves the per-customer activity log and its derived
// queries.
type ActivityController struct {
	Activities *stores.ActivityStore
}

type CreateActivityInput struct {
	Type        models.ActivityType   `json:"type" binding:"required"`
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Amount      float64               `json:"amount"`
	Date        time.Time             `json:"date" binding:"required"`
	Status      models.ActivityStatus `json:"status" binding:"required"`
	ServiceID   string                `json:"serviceId"`
	Notes       string                `json:"notes"`
}

type UpdateActivityInput struct {
	Type        *models.ActivityType   `json:"type"`
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Amount      *float64               `json:"amount"`
	Date        *time.Time             `json:"date"`
	Status      *models.ActivityStatus `json:"status"`
	ServiceID   *string                `json:"serviceId"`
	Notes       *string                `json:"notes"`
}

// List returns every activity of one customer.
func (ctl *ActivityController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Activities.ByCustomer(c.Param("id")))
}

// Create logs a new activity for one customer.
func (ctl *ActivityController) Create(c *gin.Context) {
	var input CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	activity := ctl.Activities.Add(models.CustomerActivity{
		CustomerID:  c.Param("id"),
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		Status:      input.Status,
		ServiceID:   input.ServiceID,
		Notes:       input.Notes,
	})
	c.JSON(http.StatusCreated, activity)
}

// Update merges a partial update into one activity. A missing id is not an
// error.
func (ctl *ActivityController) Update(c *gin.Context) {
	var input UpdateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	id := c.Param("activityId")
	ctl.Activities.Update(id, stores.ActivityUpdate{
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		Date:        input.Date,
		Status:      input.Status,
		ServiceID:   input.ServiceID,
		Notes:       input.Notes,
	})

	if activity, ok := ctl.Activities.GetByID(id); ok {
		c.JSON(http.StatusOK, activity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "No matching activity"})
}

// Delete removes one activity. Deleting an absent id succeeds.
func (ctl *ActivityController) Delete(c *gin.Context) {
	ctl.Activities.Delete(c.Param("activityId"))
	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

// Stats returns the monthly aggregate for one customer. Query params: year,
// month (defaults: current month).
func (ctl *ActivityController) Stats(c *gin.Context) {
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

	c.JSON(http.StatusOK, ctl.Activities.MonthlyStats(c.Param("id"), year, month))
}

// Recent returns the customer's most recent activities of any type.
func (ctl *ActivityController) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Activities.Recent(c.Param("id"), limitParam(c, 5)))
}

// Upcoming returns the customer's soonest future scheduled appointments.
func (ctl *ActivityController) Upcoming(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Activities.UpcomingAppointments(c.Param("id"), time.Now(), limitParam(c, 5)))
}

// Appointments returns the customer's most recent appointments regardless of
// time direction.
func (ctl *ActivityController) Appointments(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.Activities.RecentAppointments(c.Param("id"), limitParam(c, 3)))
}

func limitParam(c *gin.Context, fallback int) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
