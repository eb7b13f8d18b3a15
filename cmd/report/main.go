package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sofiahutsulo/finance-server/models"
	"github.com/sofiahutsulo/finance-server/pkg/finance"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// report prints a period summary for one user straight from the database,
// using the same aggregation core as the HTTP server.
func main() {
	var (
		email  string
		period string
		clamp  bool
	)

	root := &cobra.Command{
		Use:   "report",
		Short: "Print a spending summary for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := finance.Period(period)
			if !p.Valid() {
				return fmt.Errorf("period must be WEEK, MONTH or YEAR")
			}
			dsn := os.Getenv("DB_DSN")
			if dsn == "" {
				return fmt.Errorf("DB_DSN not set; export DB_DSN and retry")
			}
			db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}

			var user models.User
			if err := db.Where("email = ?", email).First(&user).Error; err != nil {
				return fmt.Errorf("user %s not found", email)
			}
			var transactions []models.Transaction
			if err := db.Where("user_id = ?", user.ID).Find(&transactions).Error; err != nil {
				return err
			}
			var categories []models.Category
			if err := db.Find(&categories).Error; err != nil {
				return err
			}
			var budgets []models.Budget
			if err := db.Where("user_id = ?", user.ID).Find(&budgets).Error; err != nil {
				return err
			}

			stats := finance.Aggregate(transactions, categories, p, time.Now(), finance.Options{ClampSeriesToWindow: clamp})
			fmt.Printf("%s summary for %s\n", p, user.Email)
			fmt.Printf("  income:  %s\n", stats.Totals.TotalIncome)
			fmt.Printf("  expense: %s\n", stats.Totals.TotalExpense)
			fmt.Printf("  net:     %s\n", stats.Totals.Difference)
			if len(stats.TopCategories) > 0 {
				fmt.Println("top categories:")
				for _, ce := range stats.TopCategories {
					fmt.Printf("  %-20s %10s  %5.1f%%\n", ce.Category.Name, ce.Amount, ce.Percentage)
				}
			}
			if len(budgets) > 0 {
				fmt.Println("budgets:")
				for _, st := range finance.ConsumeBudgets(budgets, transactions, categories) {
					mark := " "
					if st.Exceeded {
						mark = "!"
					}
					fmt.Printf("%s %-20s %s / %s (%.1f%%)\n", mark, st.Category.Name, st.Spent, st.Budget.LimitAmount, st.Percentage)
				}
			}
			return nil
		},
	}

	root.Flags().StringVar(&email, "email", "", "email of the user to report on")
	root.Flags().StringVar(&period, "period", string(finance.PeriodMonth), "WEEK, MONTH or YEAR")
	root.Flags().BoolVar(&clamp, "clamp-series", false, "restrict the time series to the period window")
	_ = root.MarkFlagRequired("email")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
