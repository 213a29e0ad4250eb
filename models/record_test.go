package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncStatus_Dirty(t *testing.T) {
	assert.True(t, StatusCreated.Dirty())
	assert.True(t, StatusUpdated.Dirty())
	assert.False(t, StatusSynced.Dirty())
	assert.False(t, SyncStatus("").Dirty())
}

func TestRecord_ChangedAtFallsBackToCreatedAt(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	rec := Record{CreatedAt: createdAt}
	assert.True(t, createdAt.Equal(rec.ChangedAt()))

	updatedAt := createdAt.Add(time.Hour)
	rec.UpdatedAt = updatedAt
	assert.True(t, updatedAt.Equal(rec.ChangedAt()))
}

func TestRecord_FieldOnNilMap(t *testing.T) {
	var rec Record
	assert.Nil(t, rec.Field("anything"))
}

func TestCollection_Valid(t *testing.T) {
	for _, collection := range SyncOrder {
		assert.True(t, collection.Valid(), "%s should be valid", collection)
	}
	assert.False(t, Collection("gadgets").Valid())
	assert.False(t, Collection("").Valid())
}

func TestSyncOrder_ParentsBeforeDependents(t *testing.T) {
	pos := make(map[Collection]int, len(SyncOrder))
	for i, collection := range SyncOrder {
		pos[collection] = i
	}

	assert.Less(t, pos[CollectionWallets], pos[CollectionTransactions])
	assert.Less(t, pos[CollectionBudgets], pos[CollectionBudgetAssignments])
	assert.Less(t, pos[CollectionTransactions], pos[CollectionBudgetAssignments])
	assert.Less(t, pos[CollectionPages], pos[CollectionBlocks])
}

func TestWallet_SurvivesJSONPersistence(t *testing.T) {
	// Payloads round-trip through JSON inside the replica; the typed
	// accessors must absorb the float64/string shapes that come back.
	wallet := Wallet{
		ID:        "w-1",
		Name:      "Cash",
		Currency:  "EUR",
		Balance:   120.5,
		Status:    StatusSynced,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	rec := wallet.Record()
	raw, err := json.Marshal(rec.Fields)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &rec.Fields))

	assert.Equal(t, wallet, WalletFromRecord(rec))
}

func TestScheduleEvent_TimesSurviveJSONPersistence(t *testing.T) {
	event := ScheduleEvent{
		ID:       "e-1",
		Title:    "Dentist",
		StartsAt: time.Date(2026, 3, 12, 14, 30, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC),
		AllDay:   false,
		Status:   StatusCreated,
	}

	rec := event.Record()
	raw, err := json.Marshal(rec.Fields)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &rec.Fields))

	back := ScheduleEventFromRecord(rec)
	assert.True(t, event.StartsAt.Equal(back.StartsAt))
	assert.True(t, event.EndsAt.Equal(back.EndsAt))
	assert.False(t, back.AllDay)
}

func TestPage_ParentLivesInEnvelope(t *testing.T) {
	page := Page{ID: "p-2", ParentID: "p-1", Title: "Child"}

	rec := page.Record()
	assert.Equal(t, "p-1", rec.ParentID)
	_, inPayload := rec.Fields["parentId"]
	assert.False(t, inPayload, "parent must not duplicate into the payload")

	assert.Equal(t, page, PageFromRecord(rec))
}

func TestBlock_PositionSurvivesJSONPersistence(t *testing.T) {
	block := Block{ID: "b-1", PageID: "p-1", Kind: "paragraph", Content: "hello", Position: 3}

	rec := block.Record()
	raw, err := json.Marshal(rec.Fields)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &rec.Fields))

	assert.Equal(t, block, BlockFromRecord(rec))
}

func TestBudget_PeriodEndSurvivesJSONPersistence(t *testing.T) {
	budget := Budget{
		ID:        "bu-1",
		Name:      "Groceries",
		Limit:     400,
		PeriodEnd: time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
		Status:    StatusUpdated,
	}

	rec := budget.Record()
	raw, err := json.Marshal(rec.Fields)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &rec.Fields))

	back := BudgetFromRecord(rec)
	assert.True(t, budget.PeriodEnd.Equal(back.PeriodEnd))
	assert.Equal(t, budget.Limit, back.Limit)
}

func TestIdentity_Zero(t *testing.T) {
	assert.True(t, Identity{}.Zero())
	assert.True(t, Identity{Email: "ghost@example.com"}.Zero())
	assert.False(t, Identity{UserID: "user-1"}.Zero())
}
