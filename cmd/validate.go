package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fartec0/aigp-codex/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the curriculum and question bank files",
	RunE: func(cmd *cobra.Command, args []string) error {
		curriculumPath, questionsPath := resolveContentPaths(cmd)

		bank, err := content.Load(curriculumPath, questionsPath)
		if err != nil {
			return err
		}

		fmt.Printf("Curriculum: %d weeks\n", len(bank.Weeks))
		fmt.Printf("Questions:  %d across %d domains\n", len(bank.Questions), len(bank.Domains()))
		fmt.Println("Content is valid.")
		return nil
	},
}
