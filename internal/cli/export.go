package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeengine/internal/session"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active session",
	Long: `Export the active session as a JSON document (stickers and history)
or as a plain comma-separated move list.`,
	Example: `  cube export -o cube.json
  cube export --format txt`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON session document and make it active",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, txt)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	return withApp(func(a *app) error {
		id, err := a.activeID()
		if err != nil {
			return err
		}
		doc, err := a.svc.Export(id)
		if err != nil {
			return err
		}

		var data []byte
		switch strings.ToLower(exportFormat) {
		case "json":
			data, err = json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode document: %w", err)
			}
		case "txt":
			data = []byte(strings.Join(doc.History, ","))
		default:
			return fmt.Errorf("unknown format: %s", exportFormat)
		}
		data = append(data, '\n')

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}

		if dir := filepath.Dir(exportOutput); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d moves to %s\n", len(doc.History), exportOutput)
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	var doc session.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	return withApp(func(a *app) error {
		st, err := a.svc.Import(&doc)
		if err != nil {
			return err
		}
		if err := a.activate(st.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported session: %s (%d moves)\n", st.ID, len(st.History))
		return nil
	})
}
