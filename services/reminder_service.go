// services/reminder_service.go
package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"studio-console-backend/config"
	"studio-console-backend/stores"
	"studio-console-backend/utils"
)

// ReminderService texts customers the day before a scheduled appointment and
// keeps activity statuses aligned with the calendar. Disabled (log-only) when
// no Twilio account is configured.
type ReminderService struct {
	customers  *stores.CustomerStore
	activities *stores.ActivityStore
	client     *twilio.RestClient
	from       string
	log        zerolog.Logger
	cron       *cron.Cron
}

// NewReminderService wires the stores and, when credentials are present, a
// Twilio client.
func NewReminderService(cfg config.TwilioConfig, customers *stores.CustomerStore, activities *stores.ActivityStore, log zerolog.Logger) *ReminderService {
	s := &ReminderService{
		customers:  customers,
		activities: activities,
		from:       cfg.FromNumber,
		log:        log,
	}
	if cfg.AccountSID != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	}
	return s
}

// StartScheduler runs the daily job at 9 AM: recompute statuses, then send
// reminders for tomorrow's appointments.
func (s *ReminderService) StartScheduler() {
	s.cron = cron.New()

	s.cron.AddFunc("0 9 * * *", func() {
		now := time.Now()
		s.activities.RecomputeStatuses(now)
		s.SendDailyReminders(now)
	})

	s.cron.Start()
	s.log.Info().Msg("reminder scheduler started")
}

// Stop halts the scheduler.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDailyReminders texts every customer with a scheduled appointment
// falling on the day after now.
func (s *ReminderService) SendDailyReminders(now time.Time) {
	tomorrowStart := utils.BeginningOfDay(now).AddDate(0, 0, 1)
	tomorrowEnd := tomorrowStart.AddDate(0, 0, 1)

	for _, customer := range s.customers.All() {
		for _, a := range s.activities.UpcomingAppointments(customer.ID, now, 0) {
			if a.Date.Before(tomorrowStart) || !a.Date.Before(tomorrowEnd) {
				continue
			}
			if !utils.ValidatePhone(customer.Phone) {
				s.log.Warn().Str("customerId", customer.ID).Msg("skipping reminder, invalid phone")
				continue
			}

			message := fmt.Sprintf("Hi %s, a reminder for your appointment tomorrow: %s (%s).",
				customer.Name, a.Title, a.Date.Format("2006-01-02"))
			if err := s.send(customer.Phone, message); err != nil {
				s.log.Error().Err(err).
					Str("customerId", customer.ID).
					Str("activityId", a.ID).
					Msg("failed to send reminder")
				continue
			}
			s.log.Info().
				Str("customerId", customer.ID).
				Str("activityId", a.ID).
				Msg("reminder sent")
		}
	}
}

func (s *ReminderService) send(to, body string) error {
	if s.client == nil {
		s.log.Debug().Str("to", to).Str("body", body).Msg("twilio disabled, reminder not sent")
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}
