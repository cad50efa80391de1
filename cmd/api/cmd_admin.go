package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/watertight-recruitment/recruitment-backend/internal/database"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
)

// migrateCmd creates or updates the tables
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap()
		if err != nil {
			return err
		}
		defer e.close()

		if err := database.Migrate(e.db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
		return nil
	},
}

// seedCmd inserts the default listings
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default job listings into an empty database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap()
		if err != nil {
			return err
		}
		defer e.close()

		if err := database.Migrate(e.db); err != nil {
			return err
		}
		n, err := services.SeedDefaultJobs(cmd.Context(), services.NewJobService(e.db))
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Listings already present, nothing seeded")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d job listings\n", n)
		return nil
	},
}

// addUserCmd creates a management account
var addUserCmd = &cobra.Command{
	Use:   "add-user <name> <password>",
	Short: "Create a management account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := bootstrap()
		if err != nil {
			return err
		}
		defer e.close()

		if err := database.Migrate(e.db); err != nil {
			return err
		}
		user, err := services.NewUserService(e.db).AddUser(cmd.Context(), args[0], args[1])
		if errors.Is(err, services.ErrUserExists) {
			return fmt.Errorf("a user named %q already exists", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (id %d)\n", user.Name, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, addUserCmd)
}
