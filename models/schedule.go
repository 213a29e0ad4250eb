package models

import "time"

// ScheduleEvent is a calendar entry. It references nothing and nothing
// references it, so it syncs last in the fixed collection order.
type ScheduleEvent struct {
	ID        string
	Title     string
	StartsAt  time.Time
	EndsAt    time.Time
	AllDay    bool
	Status    SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e ScheduleEvent) Record() Record {
	return Record{
		ID:        e.ID,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Fields: map[string]any{
			"title":    e.Title,
			"startsAt": e.StartsAt.UTC().Format(time.RFC3339Nano),
			"endsAt":   e.EndsAt.UTC().Format(time.RFC3339Nano),
			"allDay":   e.AllDay,
		},
	}
}

func ScheduleEventFromRecord(r Record) ScheduleEvent {
	allDay, _ := r.Field("allDay").(bool)
	return ScheduleEvent{
		ID:        r.ID,
		Title:     fieldString(r, "title"),
		StartsAt:  fieldTime(r, "startsAt"),
		EndsAt:    fieldTime(r, "endsAt"),
		AllDay:    allDay,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
