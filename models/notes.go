package models

import "time"

// Page is a document in the notes hierarchy. A page may nest under another
// page via ParentID, which makes the pages collection self-referential:
// parents must reach the remote store before their children.
type Page struct {
	ID        string
	ParentID  string
	Title     string
	Icon      string
	Status    SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Page) Record() Record {
	return Record{
		ID:        p.ID,
		ParentID:  p.ParentID,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Fields: map[string]any{
			"title": p.Title,
			"icon":  p.Icon,
		},
	}
}

func PageFromRecord(r Record) Page {
	return Page{
		ID:        r.ID,
		ParentID:  r.ParentID,
		Title:     fieldString(r, "title"),
		Icon:      fieldString(r, "icon"),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Block is one content unit of a page (paragraph, heading, list item...).
// Its content is opaque to the sync engine; the editor owns the format.
type Block struct {
	ID        string
	PageID    string
	Kind      string
	Content   string
	Position  float64
	Status    SyncStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b Block) Record() Record {
	return Record{
		ID:        b.ID,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Fields: map[string]any{
			"pageId":   b.PageID,
			"kind":     b.Kind,
			"content":  b.Content,
			"position": b.Position,
		},
	}
}

func BlockFromRecord(r Record) Block {
	return Block{
		ID:        r.ID,
		PageID:    fieldString(r, "pageId"),
		Kind:      fieldString(r, "kind"),
		Content:   fieldString(r, "content"),
		Position:  fieldFloat(r, "position"),
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
