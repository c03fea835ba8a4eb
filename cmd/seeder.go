package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/expenso-app/expenso/internal/event"
	eventPostgres "github.com/expenso-app/expenso/internal/event/postgres"
	"github.com/expenso-app/expenso/internal/expense"
	expensePostgres "github.com/expenso-app/expenso/internal/expense/postgres"
	"github.com/expenso-app/expenso/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var clearData bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
			TranslateError: true,
		})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			// shared_expenses goes first; the FK cascade covers event
			// deletes, but explicit order keeps this obvious.
			for _, table := range []string{"shared_expenses", "shared_events", "expenses"} {
				if err := gormDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		logger.Init(os.Getenv("APP_ENV"))
		lg := logger.L()
		ctx := context.Background()

		expenseService := expense.NewService(expensePostgres.NewExpenseRepository(gormDB), lg)
		eventService := event.NewService(eventPostgres.NewEventRepository(gormDB), nil, lg)

		personal := []expense.CreateExpenseDTO{
			{Type: expense.TypeExpense, Amount: decimal.NewFromInt(250), Category: "Food", Description: "Groceries", Date: "2024-01-05", PaymentMode: "Card"},
			{Type: expense.TypeIncome, Amount: decimal.NewFromInt(3500), Category: "Salary", Description: "January salary", Date: "2024-01-01", PaymentMode: "Bank Transfer"},
			{Type: expense.TypeExpense, Amount: decimal.NewFromInt(90), Category: "Transport", Description: "Fuel", Date: "2024-01-07", PaymentMode: "UPI",
				SplitInfo: &expense.SplitInfo{TotalPeople: 3, AmountPerPerson: decimal.NewFromInt(30)}},
		}
		for _, dto := range personal {
			if _, err := expenseService.CreateExpense(dto); err != nil {
				log.Fatalf("failed to seed personal expense: %v", err)
			}
		}
		fmt.Printf("Seeded %d personal expenses\n", len(personal))

		ev, err := eventService.CreateEvent(ctx, event.CreateEventDTO{
			Name:        "Goa Trip",
			Description: "Beach trip with friends",
		})
		if err != nil {
			log.Fatalf("failed to seed shared event: %v", err)
		}
		fmt.Println("Seeded shared event:", ev.Name, "share code:", ev.ShareCode)

		shared := []event.AddSharedExpenseDTO{
			{Description: "Hotel", Amount: decimal.NewFromInt(4000), PaidBy: "Alice", SplitBetween: []string{"Alice", "Bob"}, Date: "2024-01-01", Category: "Accommodation", PaymentMode: "Card", CreatedBy: "Alice"},
			{Description: "Dinner", Amount: decimal.NewFromInt(1200), PaidBy: "Bob", SplitBetween: []string{"Alice", "Bob", "Carol"}, Date: "2024-01-02", Category: "Food", PaymentMode: "Cash", CreatedBy: "Bob"},
		}
		for _, dto := range shared {
			if _, err := eventService.AddExpense(ctx, ev.ShareCode, dto); err != nil {
				log.Fatalf("failed to seed shared expense: %v", err)
			}
		}
		fmt.Printf("Seeded %d shared expenses\n", len(shared))
	},
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")
}
