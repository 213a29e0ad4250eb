package models

// Collection identifies one synchronizable record family. The set of
// collections is fixed at compile time; stringly-typed lookups outside this
// enumeration are a bug.
type Collection string

const (
	CollectionWallets           Collection = "wallets"
	CollectionBudgets           Collection = "budgets"
	CollectionTransactions      Collection = "transactions"
	CollectionBudgetAssignments Collection = "budget_assignments"
	CollectionPages             Collection = "pages"
	CollectionBlocks            Collection = "blocks"
	CollectionScheduleEvents    Collection = "schedule_events"
)

// SyncOrder is the fixed dependency order in which collections are pushed
// and pulled: parents before the records that reference them by foreign id.
// Wallets precede transactions; budgets precede budget assignments (which
// also reference transactions); pages precede blocks. Schedule events carry
// no foreign references and go last.
//
// Pages are additionally self-referential (Record.ParentID), which the push
// pipeline resolves with an intra-collection topological sort.
var SyncOrder = []Collection{
	CollectionWallets,
	CollectionBudgets,
	CollectionTransactions,
	CollectionBudgetAssignments,
	CollectionPages,
	CollectionBlocks,
	CollectionScheduleEvents,
}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	for _, known := range SyncOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Collection) String() string {
	return string(c)
}

// SelfReferential reports whether records of this collection may reference
// another record of the same collection as parent.
func (c Collection) SelfReferential() bool {
	return c == CollectionPages
}
