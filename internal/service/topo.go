package service

import (
	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
)

// orderByParent sorts records of a self-referential collection so that every
// parent precedes its children, regardless of discovery order.
//
// A record becomes eligible once its parent is absent, already placed, or
// not part of the dirty set at all (then it is assumed to exist remotely
// already). If a full pass places nothing — a cycle or a dangling parent
// reference — the remaining records are force-appended in discovery order:
// the engine stays live and accepts a transient reference violation
// downstream, which is logged and left for the next cycle to heal.
func orderByParent(records []models.Record, log *logger.Logger) []models.Record {
	if len(records) < 2 {
		return records
	}

	inSet := make(map[string]struct{}, len(records))
	for _, rec := range records {
		inSet[rec.ID] = struct{}{}
	}

	ordered := make([]models.Record, 0, len(records))
	placed := make(map[string]struct{}, len(records))
	remaining := records

	for len(remaining) > 0 {
		var next []models.Record
		progressed := false

		for _, rec := range remaining {
			if eligible(rec, inSet, placed) {
				ordered = append(ordered, rec)
				placed[rec.ID] = struct{}{}
				progressed = true
			} else {
				next = append(next, rec)
			}
		}

		if !progressed {
			// Cycle or dangling parent: flush unsorted rather than stall.
			log.Warn().
				Int("stuck", len(next)).
				Msg("parent ordering stalled, flushing remaining records unsorted")
			ordered = append(ordered, next...)
			break
		}

		remaining = next
	}

	return ordered
}

func eligible(rec models.Record, inSet, placed map[string]struct{}) bool {
	if rec.ParentID == "" {
		return true
	}
	if _, ok := placed[rec.ParentID]; ok {
		return true
	}
	if _, ok := inSet[rec.ParentID]; !ok {
		// Parent is not dirty, assumed already remote.
		return true
	}
	return false
}
