// ABOUTME: CSV import CLI commands
// ABOUTME: Uploads the file, then polls status until a terminal state
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"calldeck/api"
	"calldeck/config"
	"calldeck/importer"
	"calldeck/models"
)

// ImportCommand uploads a contacts CSV and follows the async import.
func ImportCommand(client *api.Client, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("contacts import", flag.ExitOnError)
	group := fs.String("group", "", "Target group for imported contacts")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("CSV file path is required")
	}
	path := fs.Args()[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	importID, err := client.StartImport(ctx, path, content, *group)
	if err != nil {
		return friendlyError(err)
	}
	fmt.Printf("Import started (id: %s)\n", importID)

	poller := importer.New(func(ctx context.Context) (*models.ImportStatus, error) {
		return client.ImportStatus(ctx, importID)
	}, cfg.PollInterval)

	final, err := poller.Wait(ctx, func(prog importer.Progress) {
		if prog.Status != nil && !prog.Status.Terminal() {
			fmt.Printf("  %.0f%% (%d/%d rows)\n", prog.Percent, prog.Status.ProcessedRows, prog.Status.TotalRows)
		}
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if final.Status == models.ImportStatusFailed {
		return fmt.Errorf("import failed: %d of %d rows errored", final.FailedImports, final.TotalRows)
	}
	fmt.Printf("✓ Import completed: %d contact(s) imported\n", final.SuccessfulImports)
	return nil
}

// ImportTemplateCommand downloads the CSV template.
func ImportTemplateCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts import-template", flag.ExitOnError)
	output := fs.String("output", "contacts_template.csv", "Output file")
	_ = fs.Parse(args)

	content, err := client.ImportTemplate(context.Background())
	if err != nil {
		return friendlyError(err)
	}

	if err := os.WriteFile(*output, content, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	fmt.Printf("✓ Template written to %s\n", *output)
	return nil
}
