package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/config"
	"github.com/alishahamin403/Seline-sub014/internal/model"
	"github.com/alishahamin403/Seline-sub014/internal/ofx"
	"github.com/alishahamin403/Seline-sub014/internal/storage"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import financial records from OFX/QFX files",
		Long: `Import financial transactions from OFX or QFX (Quicken) files exported
from your bank into the local record store.

Examples:
  seline import-ofx ~/Downloads/chase_jan_2024.qfx
  seline import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return common.NewUserError("Failed to open database", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return common.NewUserError("Failed to migrate database", err)
	}

	parser := ofx.NewParser()
	bar := progressbar.Default(int64(len(allFiles)), "importing")

	var total int
	for _, path := range allFiles {
		records, account, err := parseOFXFile(cmd, parser, path)
		if err != nil {
			slog.Warn("Skipping file", "file", path, "error", err)
			_ = bar.Add(1)
			continue
		}

		if !dryRun {
			if err := store.SaveFinancialRecords(cmd.Context(), records, account); err != nil {
				return common.NewUserError(fmt.Sprintf("Failed to save records from %s", path), err)
			}
		}
		total += len(records)
		_ = bar.Add(1)
	}

	if dryRun {
		fmt.Printf("Dry run: would import %d records from %d files\n", total, len(allFiles))
	} else {
		fmt.Printf("Imported %d records from %d files\n", total, len(allFiles))
	}
	return nil
}

func parseOFXFile(cmd *cobra.Command, parser *ofx.Parser, path string) ([]model.FinancialRecord, string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied import path
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()

	return parser.ParseFile(cmd.Context(), f)
}
