package models

import "time"

// ProducerReminders picks the schedules dated tomorrow that have at least one
// confirmed application. Applications must be preloaded.
func ProducerReminders(schedules []Schedule, today time.Time) []Schedule {
	tomorrow := Tomorrow(today)
	reminders := []Schedule{}
	for _, s := range schedules {
		if s.IsOn(tomorrow) && s.HasConfirmedApplication() {
			reminders = append(reminders, s)
		}
	}
	return reminders
}

// ActorReminders picks the schedules of confirmed applications dated tomorrow.
// Each application must carry its Schedule.
func ActorReminders(applications []Application, today time.Time) []Schedule {
	tomorrow := Tomorrow(today)
	reminders := []Schedule{}
	for _, app := range applications {
		if app.Status != ApplicationConfirmed || app.Schedule == nil {
			continue
		}
		if app.Schedule.IsOn(tomorrow) {
			reminders = append(reminders, *app.Schedule)
		}
	}
	return reminders
}

// NeedsReminder is the batch job's filter for one confirmed application.
func NeedsReminder(app Application, today time.Time) bool {
	if app.Status != ApplicationConfirmed || app.Schedule == nil {
		return false
	}
	return app.Schedule.IsOn(Tomorrow(today)) && app.Schedule.Status != ScheduleCompleted
}
