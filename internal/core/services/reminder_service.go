package services

import (
	"context"
	"log"
	"time"

	"caremate-health/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService sends daily reminders for next-day appointments.
// Failures are logged and never fatal.
type ReminderService struct {
	apptRepo repositories.AppointmentRepository
	cron     *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(apptRepo repositories.AppointmentRepository) *ReminderService {
	return &ReminderService{
		apptRepo: apptRepo,
		cron:     cron.New(),
	}
}

// Start schedules the daily reminder run (08:30 every day)
func (s *ReminderService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.sendDailyReminders); err != nil {
		log.Printf("⚠️ Failed to schedule appointment reminders: %v", err)
		return
	}
	s.cron.Start()
	log.Println("✅ Appointment reminder job scheduled (08:30 daily)")
}

// Stop stops the cron scheduler
func (s *ReminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Appointment reminder job stopped")
}

// sendDailyReminders logs a reminder for every appointment booked for
// tomorrow.
func (s *ReminderService) sendDailyReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	appts, err := s.apptRepo.ListUpcoming(ctx, tomorrow, tomorrow.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("⚠️ Reminder query failed: %v", err)
		return
	}

	for _, a := range appts {
		log.Printf("🔔 Reminder: patient %d has an appointment with %s (%s) at %s tomorrow",
			a.PatientID, a.DoctorName, a.Specialty, a.TimeSlot)
	}
	log.Printf("✅ Reminder run completed: %d appointment(s)", len(appts))
}
