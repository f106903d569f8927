package controllers

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// DashboardController composes the owner's overview from the stores.
type DashboardController struct {
	Customers  *stores.CustomerStore
	Services   *stores.ServiceStore
	Activities *stores.ActivityStore
}

type UpcomingAppointment struct {
	CustomerName string    `json:"customerName"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	When         string    `json:"when"` // "Today", "Tomorrow", "3 days"
}

type RecentActivityEntry struct {
	CustomerName string    `json:"customerName"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Date         time.Time `json:"date"`
}

// Overview returns customer totals, revenue rollups and the next scheduled
// appointments across all customers.
func (ctl *DashboardController) Overview(c *gin.Context) {
	now := time.Now()

	upcoming := make([]UpcomingAppointment, 0)
	recent := make([]RecentActivityEntry, 0)
	for _, customer := range ctl.Customers.All() {
		for _, a := range ctl.Activities.UpcomingAppointments(customer.ID, now, 5) {
			upcoming = append(upcoming, UpcomingAppointment{
				CustomerName: customer.Name,
				Title:        a.Title,
				Date:         a.Date,
				When:         whenLabel(now, a.Date),
			})
		}
		for _, a := range ctl.Activities.Recent(customer.ID, 3) {
			recent = append(recent, RecentActivityEntry{
				CustomerName: customer.Name,
				Title:        a.Title,
				Type:         string(a.Type),
				Date:         a.Date,
			})
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(upcoming) > 7 {
		upcoming = upcoming[:7]
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"totalCustomers":       ctl.Customers.TotalCustomers(),
		"totalRevenue":         ctl.Customers.TotalRevenue(),
		"dailyRevenue":         ctl.Services.DailyRevenue(now),
		"monthlyRevenue":       ctl.Services.MonthlyRevenue(now),
		"activeServices":       len(ctl.Services.ActiveServices()),
		"upcomingAppointments": upcoming,
		"recentActivities":     recent,
	})
}

func whenLabel(now, date time.Time) string {
	switch days := utils.DaysBetween(now, date); days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%d days", days)
	}
}
