package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/observability"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Inspect stored data",
}

var showProfileCmd = &cobra.Command{
	Use:   "profile <id>",
	Short: "Print a submitted profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowProfile,
}

var showSessionCmd = &cobra.Command{
	Use:   "session <id>",
	Short: "Print a session's interview transcript",
	Args:  cobra.ExactArgs(1),
	RunE:  runShowSession,
}

func init() {
	showCmd.AddCommand(showProfileCmd)
	showCmd.AddCommand(showSessionCmd)
	rootCmd.AddCommand(showCmd)
}

func openDB(cmd *cobra.Command) (*db.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return db.Connect(cmd.Context(), databaseURL)
}

func runShowProfile(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid profile id %q", args[0])
	}

	database, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	profile, err := database.GetProfile(cmd.Context(), id)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}

func runShowSession(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q", args[0])
	}

	database, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	turns, err := database.ListTurns(cmd.Context(), id)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintTranscript(id.String(), turns)
	return nil
}
