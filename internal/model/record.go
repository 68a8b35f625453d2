// Package model defines the record types and query types shared across the engine.
package model

import (
	"time"
)

// RecordKind identifies which underlying store a record came from.
type RecordKind string

const (
	// KindFinancial is a financial transaction (receipt, card charge, transfer).
	KindFinancial RecordKind = "financial"
	// KindMessage is a message or email.
	KindMessage RecordKind = "message"
	// KindCalendar is a calendar event.
	KindCalendar RecordKind = "calendar"
	// KindNote is a free-text note.
	KindNote RecordKind = "note"
	// KindVisit is a geo place visit.
	KindVisit RecordKind = "visit"
)

// Projection is the common read-only view of a record that filters and
// operations are written against. Pointer fields distinguish "missing"
// from a genuine zero value; a nil Amount is not the same as $0.00.
type Projection struct {
	Date         *time.Time
	Amount       *float64
	Category     *string
	Counterparty *string
	Status       *string
	Title        string
	Text         string
	ID           string
}

// Record is one item from any data source. The projection is computed once
// at fetch time so downstream code never switches on Kind.
type Record struct {
	Kind       RecordKind
	Projection Projection
}

// FinancialRecord is a single financial transaction from any source.
type FinancialRecord struct {
	Date     time.Time
	ID       string
	Merchant string
	Category string
	Status   string
	Note     string
	Amount   float64
}

// Record projects the transaction into the common record shape.
func (f FinancialRecord) Record() Record {
	p := Projection{
		ID:     f.ID,
		Title:  f.Merchant,
		Text:   f.Note,
		Amount: ptr(f.Amount),
		Date:   ptr(f.Date),
	}
	if f.Category != "" {
		p.Category = ptr(f.Category)
	}
	if f.Merchant != "" {
		p.Counterparty = ptr(f.Merchant)
	}
	if f.Status != "" {
		p.Status = ptr(f.Status)
	}
	return Record{Kind: KindFinancial, Projection: p}
}

// Message is an email or chat message.
type Message struct {
	Date    time.Time
	ID      string
	Sender  string
	Subject string
	Body    string
	Folder  string
	Status  string // e.g. read, unread, archived
}

// Record projects the message into the common record shape.
func (m Message) Record() Record {
	p := Projection{
		ID:    m.ID,
		Title: m.Subject,
		Text:  m.Body,
		Date:  ptr(m.Date),
	}
	if m.Sender != "" {
		p.Counterparty = ptr(m.Sender)
	}
	if m.Folder != "" {
		p.Category = ptr(m.Folder)
	}
	if m.Status != "" {
		p.Status = ptr(m.Status)
	}
	return Record{Kind: KindMessage, Projection: p}
}

// CalendarItem is a scheduled event.
type CalendarItem struct {
	Start    time.Time
	ID       string
	Title    string
	Notes    string
	Calendar string
	Status   string // e.g. confirmed, tentative, cancelled
}

// Record projects the calendar item into the common record shape.
func (c CalendarItem) Record() Record {
	p := Projection{
		ID:    c.ID,
		Title: c.Title,
		Text:  c.Notes,
		Date:  ptr(c.Start),
	}
	if c.Calendar != "" {
		p.Category = ptr(c.Calendar)
	}
	if c.Status != "" {
		p.Status = ptr(c.Status)
	}
	return Record{Kind: KindCalendar, Projection: p}
}

// Note is a free-text note. Notes carry no date unless the user dated them.
type Note struct {
	CreatedAt *time.Time
	ID        string
	Title     string
	Body      string
	Folder    string
}

// Record projects the note into the common record shape.
func (n Note) Record() Record {
	p := Projection{
		ID:    n.ID,
		Title: n.Title,
		Text:  n.Body,
		Date:  n.CreatedAt,
	}
	if n.Folder != "" {
		p.Category = ptr(n.Folder)
	}
	return Record{Kind: KindNote, Projection: p}
}

// PlaceVisit is a geo visit to a named place.
type PlaceVisit struct {
	ArrivedAt time.Time
	ID        string
	Place     string
	Address   string
	Category  string // e.g. restaurant, gym
}

// Record projects the visit into the common record shape.
func (v PlaceVisit) Record() Record {
	p := Projection{
		ID:    v.ID,
		Title: v.Place,
		Text:  v.Address,
		Date:  ptr(v.ArrivedAt),
	}
	if v.Category != "" {
		p.Category = ptr(v.Category)
	}
	if v.Place != "" {
		p.Counterparty = ptr(v.Place)
	}
	return Record{Kind: KindVisit, Projection: p}
}

func ptr[T any](v T) *T {
	return &v
}
