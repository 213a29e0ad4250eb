package models

import "time"

// Wallet is a money account. Transactions reference it by WalletID, so
// wallets sync before transactions.
type Wallet struct {
	ID        string
	Name      string
	Currency  string
	Balance   float64
	Status    SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w Wallet) Record() Record {
	return Record{
		ID:        w.ID,
		Status:    w.Status,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Fields: map[string]any{
			"name":     w.Name,
			"currency": w.Currency,
			"balance":  w.Balance,
		},
	}
}

func WalletFromRecord(r Record) Wallet {
	return Wallet{
		ID:        r.ID,
		Name:      fieldString(r, "name"),
		Currency:  fieldString(r, "currency"),
		Balance:   fieldFloat(r, "balance"),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Transaction is a single money movement inside exactly one wallet.
type Transaction struct {
	ID        string
	WalletID  string
	Category  string
	Note      string
	Amount    float64
	Status    SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Transaction) Record() Record {
	return Record{
		ID:        t.ID,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		Fields: map[string]any{
			"walletId": t.WalletID,
			"category": t.Category,
			"note":     t.Note,
			"amount":   t.Amount,
		},
	}
}

func TransactionFromRecord(r Record) Transaction {
	return Transaction{
		ID:        r.ID,
		WalletID:  fieldString(r, "walletId"),
		Category:  fieldString(r, "category"),
		Note:      fieldString(r, "note"),
		Amount:    fieldFloat(r, "amount"),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Budget is a spending envelope for a period.
type Budget struct {
	ID        string
	Name      string
	Limit     float64
	PeriodEnd time.Time
	Status    SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Budget) Record() Record {
	return Record{
		ID:        b.ID,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Fields: map[string]any{
			"name":      b.Name,
			"limit":     b.Limit,
			"periodEnd": b.PeriodEnd.UTC().Format(time.RFC3339Nano),
		},
	}
}

func BudgetFromRecord(r Record) Budget {
	return Budget{
		ID:        r.ID,
		Name:      fieldString(r, "name"),
		Limit:     fieldFloat(r, "limit"),
		PeriodEnd: fieldTime(r, "periodEnd"),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// BudgetAssignment links a transaction to the budget it counts against.
// It references both a budget and a transaction, so it syncs after both.
type BudgetAssignment struct {
	ID            string
	BudgetID      string
	TransactionID string
	Amount        float64
	Status        SyncStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a BudgetAssignment) Record() Record {
	return Record{
		ID:        a.ID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
		Fields: map[string]any{
			"budgetId":      a.BudgetID,
			"transactionId": a.TransactionID,
			"amount":        a.Amount,
		},
	}
}

func BudgetAssignmentFromRecord(r Record) BudgetAssignment {
	return BudgetAssignment{
		ID:            r.ID,
		BudgetID:      fieldString(r, "budgetId"),
		TransactionID: fieldString(r, "transactionId"),
		Amount:        fieldFloat(r, "amount"),
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
