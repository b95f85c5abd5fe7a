package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fartec0/aigp-codex/internal/app"
	"github.com/fartec0/aigp-codex/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "aigp-codex",
	Short: "Study portal core for the AIGP certification",
	Long: "aigp-codex — persistence and scoring core for an AIGP study portal:\n" +
		"curriculum progress, week notes, quiz grading, and result analytics\n" +
		"over an embedded SQLite database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AIGP_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Directory holding curriculum.json and questions.json (overrides AIGP_CONTENT_DIR)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the AIGP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentPaths returns the curriculum and question bank file
// paths: --content flag, then AIGP_CONTENT_DIR, then ./content.
func resolveContentPaths(cmd *cobra.Command) (string, string) {
	dir, _ := cmd.Flags().GetString("content")
	if dir == "" {
		dir = os.Getenv("AIGP_CONTENT_DIR")
	}
	if dir == "" {
		dir = "content"
	}
	return filepath.Join(dir, "curriculum.json"), filepath.Join(dir, "questions.json")
}

// openPortal assembles the full application from flags and environment.
func openPortal(cmd *cobra.Command) (*app.Portal, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	curriculumPath, questionsPath := resolveContentPaths(cmd)

	return app.New(cmd.Context(), app.Options{
		DBPath:         dbPath,
		CurriculumPath: curriculumPath,
		QuestionsPath:  questionsPath,
	})
}
