package service

import (
	"testing"

	"github.com/daybook-app/daybook/internal/logger"
	"github.com/daybook-app/daybook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(id, parentID string) models.Record {
	return models.Record{ID: id, ParentID: parentID, Status: models.StatusCreated}
}

// indexOf returns the position of id in records, -1 when absent.
func indexOf(records []models.Record, id string) int {
	for i, rec := range records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func TestOrderByParent_ParentsBeforeChildren(t *testing.T) {
	// Discovery order is worst case: grandchild first.
	records := []models.Record{
		page("c", "b"),
		page("b", "a"),
		page("a", ""),
	}

	ordered := orderByParent(records, logger.Nop())

	require.Len(t, ordered, 3)
	assert.Less(t, indexOf(ordered, "a"), indexOf(ordered, "b"))
	assert.Less(t, indexOf(ordered, "b"), indexOf(ordered, "c"))
}

func TestOrderByParent_ForestKeepsAllRecords(t *testing.T) {
	records := []models.Record{
		page("b1", "a1"),
		page("a2", ""),
		page("a1", ""),
		page("b2", "a2"),
		page("c1", "b1"),
	}

	ordered := orderByParent(records, logger.Nop())

	require.Len(t, ordered, len(records))
	assert.Less(t, indexOf(ordered, "a1"), indexOf(ordered, "b1"))
	assert.Less(t, indexOf(ordered, "b1"), indexOf(ordered, "c1"))
	assert.Less(t, indexOf(ordered, "a2"), indexOf(ordered, "b2"))
}

func TestOrderByParent_ParentNotDirtyIsEligible(t *testing.T) {
	// The parent is not part of the dirty set, so it is assumed to already
	// exist remotely and the child needs no local predecessor.
	records := []models.Record{page("child", "already-remote")}

	ordered := orderByParent(records, logger.Nop())

	require.Len(t, ordered, 1)
	assert.Equal(t, "child", ordered[0].ID)
}

func TestOrderByParent_CycleFlushesInsteadOfStalling(t *testing.T) {
	records := []models.Record{
		page("x", "y"),
		page("y", "x"),
		page("root", ""),
	}

	ordered := orderByParent(records, logger.Nop())

	// Liveness over ordering: everything is still pushed.
	require.Len(t, ordered, 3)
	assert.Equal(t, "root", ordered[0].ID)
}

func TestOrderByParent_SmallInputsUntouched(t *testing.T) {
	assert.Empty(t, orderByParent(nil, logger.Nop()))

	one := []models.Record{page("only", "whatever")}
	assert.Equal(t, one, orderByParent(one, logger.Nop()))
}
