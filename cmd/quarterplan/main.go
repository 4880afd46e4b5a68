package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/alexanderramin/quarterplan/internal/cli"
	"github.com/alexanderramin/quarterplan/internal/db"
	"github.com/alexanderramin/quarterplan/internal/repository"
	"github.com/alexanderramin/quarterplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Styled output only when stdout is a terminal.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// Determine DB path: env var or default ~/.quarterplan/quarterplan.db
	dbPath := os.Getenv("QUARTERPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".quarterplan", "quarterplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	prefsRepo := repository.NewSQLitePreferencesRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	teamSvc := service.NewTeamService(prefsRepo)
	planSvc := service.NewPlanService(planRepo, prefsRepo)

	app := &cli.App{
		Team:  teamSvc,
		Plan:  planSvc,
		Share: service.NewShareService(teamSvc, planSvc, uow),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
