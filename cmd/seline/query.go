package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alishahamin403/Seline-sub014/internal/cli"
	"github.com/alishahamin403/Seline-sub014/internal/common"
	"github.com/alishahamin403/Seline-sub014/internal/config"
	"github.com/alishahamin403/Seline-sub014/internal/engine"
	"github.com/alishahamin403/Seline-sub014/internal/format"
	"github.com/alishahamin403/Seline-sub014/internal/model"
	"github.com/alishahamin403/Seline-sub014/internal/storage"
)

// lowConfidenceThreshold marks results the language layer was unsure
// about. The query still runs; the caller decides what to do with the
// flag.
const lowConfidenceThreshold = 0.5

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [file]",
		Short: "Execute a semantic query from a JSON file (or stdin)",
		Long: `Execute a structured semantic query against the local record stores.

The query is the JSON form of a SemanticQuery: intent, data sources,
filters, operations, presentation, and the generator's confidence.

Examples:
  seline query spending-compare.json
  cat query.json | seline query -
  seline query --json spending-compare.json`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().Bool("json", false, "print the raw QueryResult as JSON instead of formatted text")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	query, err := readQuery(args[0])
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return common.NewUserError("Failed to open database", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return common.NewUserError("Failed to migrate database", err)
	}

	exec := engine.NewWithConfig(store.Sources(), engine.Config{
		FetchTimeout: time.Duration(config.FetchTimeoutSeconds()) * time.Second,
	})

	result, err := exec.Execute(cmd.Context(), *query)
	if err != nil {
		if common.IsFatalQueryError(err) {
			return common.NewUserError("The query could not be executed", err)
		}
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	resp := format.Format(result, *query)
	fmt.Println(cli.RenderResponse(resp))

	if result.Confidence < lowConfidenceThreshold {
		fmt.Println(cli.WarningStyle.Render(
			fmt.Sprintf("Note: query confidence was low (%.2f); the interpretation may be off.", result.Confidence)))
	}
	return nil
}

func readQuery(path string) (*model.SemanticQuery, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, common.NewUserError("Failed to open query file", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	var query model.SemanticQuery
	if err := json.NewDecoder(reader).Decode(&query); err != nil {
		return nil, common.NewUserError("Failed to parse query JSON", err)
	}
	return &query, nil
}
