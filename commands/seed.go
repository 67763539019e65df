package commands

import (
	"fmt"
	"time"

	"github.com/LovationAdmin/expense-api/config"
	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/repository"
	"github.com/LovationAdmin/expense-api/seed"

	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the demo user and its monthly budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := config.RunMigrations(cfg.DatabaseURL); err != nil {
				return err
			}

			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if month == "" {
				month = models.CurrentMonth(time.Now())
			}
			res, err := seed.Demo(cmd.Context(), repository.NewUserRepository(db), repository.NewBudgetRepository(db), month)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "demo user %s (%s), %d budgets created, %d updated for %s\n",
				seed.DemoEmail, res.UserID, res.BudgetsCreated, res.BudgetsUpdated, month)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "budget month as YYYY-MM (default current month)")

	return cmd
}
