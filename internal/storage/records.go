package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alishahamin403/Seline-sub014/internal/model"
)

// SaveFinancialRecords upserts financial records by ID.
func (s *SQLiteStorage) SaveFinancialRecords(ctx context.Context, records []model.FinancialRecord, account string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO financial_records (id, date, merchant, category, status, note, amount, account)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			merchant = excluded.merchant,
			category = excluded.category,
			status = excluded.status,
			note = excluded.note,
			amount = excluded.amount,
			account = excluded.account`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Date, rec.Merchant,
			nullable(rec.Category), nullable(rec.Status), rec.Note, rec.Amount, nullable(account)); err != nil {
			return fmt.Errorf("failed to save financial record %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// FetchFinancialRecords returns financial records in stable date order,
// restricted to the given account when scope is non-empty.
func (s *SQLiteStorage) FetchFinancialRecords(ctx context.Context, scope string) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, date, merchant, category, status, note, amount
		FROM financial_records`
	args := []any{}
	if scope != "" {
		query += ` WHERE account = ?`
		args = append(args, scope)
	}
	query += ` ORDER BY date ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var rec model.FinancialRecord
		var category, status, note sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Merchant, &category, &status, &note, &rec.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan financial record: %w", err)
		}
		rec.Category = category.String
		rec.Status = status.String
		rec.Note = note.String
		records = append(records, rec.Record())
	}
	return records, rows.Err()
}

// SaveMessages upserts messages by ID.
func (s *SQLiteStorage) SaveMessages(ctx context.Context, messages []model.Message) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range messages {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO messages (id, date, sender, subject, body, folder, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				date = excluded.date,
				sender = excluded.sender,
				subject = excluded.subject,
				body = excluded.body,
				folder = excluded.folder,
				status = excluded.status`,
			m.ID, m.Date, m.Sender, m.Subject, m.Body, nullable(m.Folder), nullable(m.Status)); err != nil {
			return fmt.Errorf("failed to save message %s: %w", m.ID, err)
		}
	}
	return tx.Commit()
}

// FetchMessages returns messages in stable date order, restricted to the
// given folder when scope is non-empty.
func (s *SQLiteStorage) FetchMessages(ctx context.Context, scope string) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, date, sender, subject, body, folder, status FROM messages`
	args := []any{}
	if scope != "" {
		query += ` WHERE folder = ?`
		args = append(args, scope)
	}
	query += ` ORDER BY date ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var m model.Message
		var sender, subject, body, folder, status sql.NullString
		if err := rows.Scan(&m.ID, &m.Date, &sender, &subject, &body, &folder, &status); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		m.Sender = sender.String
		m.Subject = subject.String
		m.Body = body.String
		m.Folder = folder.String
		m.Status = status.String
		records = append(records, m.Record())
	}
	return records, rows.Err()
}

// SaveCalendarItems upserts calendar items by ID.
func (s *SQLiteStorage) SaveCalendarItems(ctx context.Context, items []model.CalendarItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO calendar_items (id, start, title, notes, calendar, status)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				start = excluded.start,
				title = excluded.title,
				notes = excluded.notes,
				calendar = excluded.calendar,
				status = excluded.status`,
			item.ID, item.Start, item.Title, item.Notes, nullable(item.Calendar), nullable(item.Status)); err != nil {
			return fmt.Errorf("failed to save calendar item %s: %w", item.ID, err)
		}
	}
	return tx.Commit()
}

// FetchCalendarItems returns calendar items in stable start order,
// restricted to the named calendar when scope is non-empty.
func (s *SQLiteStorage) FetchCalendarItems(ctx context.Context, scope string) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, start, title, notes, calendar, status FROM calendar_items`
	args := []any{}
	if scope != "" {
		query += ` WHERE calendar = ?`
		args = append(args, scope)
	}
	query += ` ORDER BY start ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var item model.CalendarItem
		var notes, calendar, status sql.NullString
		if err := rows.Scan(&item.ID, &item.Start, &item.Title, &notes, &calendar, &status); err != nil {
			return nil, fmt.Errorf("failed to scan calendar item: %w", err)
		}
		item.Notes = notes.String
		item.Calendar = calendar.String
		item.Status = status.String
		records = append(records, item.Record())
	}
	return records, rows.Err()
}

// SaveNotes upserts notes by ID.
func (s *SQLiteStorage) SaveNotes(ctx context.Context, notes []model.Note) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, n := range notes {
		var created any
		if n.CreatedAt != nil {
			created = *n.CreatedAt
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO notes (id, created, title, body, folder)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				created = excluded.created,
				title = excluded.title,
				body = excluded.body,
				folder = excluded.folder`,
			n.ID, created, n.Title, n.Body, nullable(n.Folder)); err != nil {
			return fmt.Errorf("failed to save note %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}

// FetchNotes returns notes restricted to the given folder when scope is
// non-empty. Undated notes sort before dated ones; order stays stable by
// ID within a date.
func (s *SQLiteStorage) FetchNotes(ctx context.Context, scope string) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, created, title, body, folder FROM notes`
	args := []any{}
	if scope != "" {
		query += ` WHERE folder = ?`
		args = append(args, scope)
	}
	query += ` ORDER BY created ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var n model.Note
		var created sql.NullTime
		var title, body, folder sql.NullString
		if err := rows.Scan(&n.ID, &created, &title, &body, &folder); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if created.Valid {
			t := created.Time
			n.CreatedAt = &t
		}
		n.Title = title.String
		n.Body = body.String
		n.Folder = folder.String
		records = append(records, n.Record())
	}
	return records, rows.Err()
}

// SavePlaceVisits upserts place visits by ID.
func (s *SQLiteStorage) SavePlaceVisits(ctx context.Context, visits []model.PlaceVisit) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, v := range visits {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO place_visits (id, arrived, place, address, category)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				arrived = excluded.arrived,
				place = excluded.place,
				address = excluded.address,
				category = excluded.category`,
			v.ID, v.ArrivedAt, v.Place, v.Address, nullable(v.Category)); err != nil {
			return fmt.Errorf("failed to save place visit %s: %w", v.ID, err)
		}
	}
	return tx.Commit()
}

// FetchPlaceVisits returns visits in stable arrival order, restricted to
// the given place category when scope is non-empty.
func (s *SQLiteStorage) FetchPlaceVisits(ctx context.Context, scope string) ([]model.Record, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT id, arrived, place, address, category FROM place_visits`
	args := []any{}
	if scope != "" {
		query += ` WHERE category = ?`
		args = append(args, scope)
	}
	query += ` ORDER BY arrived ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query place visits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.Record
	for rows.Next() {
		var v model.PlaceVisit
		var address, category sql.NullString
		if err := rows.Scan(&v.ID, &v.ArrivedAt, &v.Place, &address, &category); err != nil {
			return nil, fmt.Errorf("failed to scan place visit: %w", err)
		}
		v.Address = address.String
		v.Category = category.String
		records = append(records, v.Record())
	}
	return records, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
