package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/config"
	"github.com/alishahamin403/Seline-sub014/internal/model"
	"github.com/alishahamin403/Seline-sub014/internal/storage"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo records for all kinds",
		RunE:  runSeed,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.NewSQLiteStorage(config.DatabasePath())
			if err != nil {
				return common.NewUserError("Failed to open database", err)
			}
			defer func() { _ = store.Close() }()
			return store.Migrate(cmd.Context())
		},
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return common.NewUserError("Failed to open database", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return common.NewUserError("Failed to migrate database", err)
	}

	now := time.Now()
	day := func(offset int) time.Time { return now.AddDate(0, 0, -offset) }

	financial := []model.FinancialRecord{
		{ID: uuid.NewString(), Date: day(2), Merchant: "Pizza Hut", Category: "food", Status: "posted", Amount: 24.50},
		{ID: uuid.NewString(), Date: day(5), Merchant: "Whole Foods Market", Category: "groceries", Status: "posted", Amount: 86.12},
		{ID: uuid.NewString(), Date: day(9), Merchant: "Amazon", Category: "shopping", Status: "posted", Amount: 42.99},
		{ID: uuid.NewString(), Date: day(34), Merchant: "Pizza Hut", Category: "food", Status: "posted", Amount: 31.00},
		{ID: uuid.NewString(), Date: day(36), Merchant: "Shell", Category: "transport", Status: "posted", Amount: 58.40},
	}
	if err := store.SaveFinancialRecords(cmd.Context(), financial, "demo"); err != nil {
		return err
	}

	messages := []model.Message{
		{ID: uuid.NewString(), Date: day(2), Sender: "orders@pizzahut.com", Subject: "Your order is on the way",
			Body: "Your pizza is almost ready. Estimated delivery 19:56.", Folder: "inbox", Status: "read"},
		{ID: uuid.NewString(), Date: day(6), Sender: "no-reply@airline.example", Subject: "Flight confirmation",
			Body: "Your flight to Lisbon is confirmed for next month.", Folder: "inbox", Status: "unread"},
	}
	if err := store.SaveMessages(cmd.Context(), messages); err != nil {
		return err
	}

	calendar := []model.CalendarItem{
		{ID: uuid.NewString(), Start: day(-3), Title: "Dentist appointment", Calendar: "personal", Status: "confirmed"},
		{ID: uuid.NewString(), Start: day(1), Title: "Team standup", Calendar: "work", Status: "confirmed"},
	}
	if err := store.SaveCalendarItems(cmd.Context(), calendar); err != nil {
		return err
	}

	created := day(12)
	notes := []model.Note{
		{ID: uuid.NewString(), CreatedAt: &created, Title: "Gift ideas", Body: "Noise-cancelling headphones, pour-over kettle", Folder: "personal"},
	}
	if err := store.SaveNotes(cmd.Context(), notes); err != nil {
		return err
	}

	visits := []model.PlaceVisit{
		{ID: uuid.NewString(), ArrivedAt: day(3), Place: "Blue Bottle Coffee", Address: "300 Webster St", Category: "cafe"},
		{ID: uuid.NewString(), ArrivedAt: day(8), Place: "Equinox", Address: "10 Hudson Yards", Category: "gym"},
	}
	if err := store.SavePlaceVisits(cmd.Context(), visits); err != nil {
		return err
	}

	fmt.Println("Seeded demo records for all kinds")
	return nil
}
