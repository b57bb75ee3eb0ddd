// ABOUTME: Call scheduling CLI commands
// ABOUTME: Single and bulk scheduling plus the call history listing
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"calldeck/api"
	"calldeck/contacts"
	"calldeck/models"
)

// ScheduleCallCommand books a call for one contact.
func ScheduleCallCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("calls schedule", flag.ExitOnError)
	at := fs.String("at", "", "Scheduled time, RFC3339 (required)")
	priority := fs.String("priority", models.PriorityNormal, "Priority: low, normal, high, urgent")
	reason := fs.String("reason", "", "Reason for the call")
	notes := fs.String("notes", "", "Notes for the agent")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("contact ID is required")
	}
	contactID, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid contact ID: %w", err)
	}

	when, err := parseWhen(*at)
	if err != nil {
		return err
	}

	if err := client.ScheduleCall(context.Background(), contactID, when, *priority, *reason, *notes); err != nil {
		return friendlyError(err)
	}

	fmt.Printf("✓ Call scheduled for %s (%s priority)\n", when.Format(time.RFC1123), *priority)
	return nil
}

// BulkScheduleCommand books calls for a list of contact ids in one request.
func BulkScheduleCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("calls bulk-schedule", flag.ExitOnError)
	at := fs.String("at", "", "Scheduled time, RFC3339 (required)")
	priority := fs.String("priority", models.PriorityNormal, "Priority: low, normal, high, urgent")
	_ = fs.Parse(args)

	if len(fs.Args()) == 0 {
		return fmt.Errorf("at least one contact ID is required")
	}
	ids := make([]uuid.UUID, 0, len(fs.Args()))
	for _, arg := range fs.Args() {
		id, err := uuid.Parse(arg)
		if err != nil {
			return fmt.Errorf("invalid contact ID %q: %w", arg, err)
		}
		ids = append(ids, id)
	}

	when, err := parseWhen(*at)
	if err != nil {
		return err
	}

	if err := client.BulkScheduleCalls(context.Background(), ids, when, *priority); err != nil {
		return friendlyError(err)
	}

	fmt.Printf("✓ %d call(s) scheduled for %s\n", len(ids), when.Format(time.RFC1123))
	return nil
}

// CallHistoryCommand lists past calls with client-side filters.
func CallHistoryCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("calls history", flag.ExitOnError)
	search := fs.String("search", "", "Search across contact name, phone, company")
	status := fs.String("status", "", "Filter by status")
	outcome := fs.String("outcome", "", "Filter by outcome")
	_ = fs.Parse(args)

	// History is sample-backed until the backend exposes a call log feed.
	calls := models.SampleCallHistory()

	filter := contacts.Filter{Search: *search}
	shown := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CONTACT\tPHONE\tSTATUS\tOUTCOME\tDURATION\tSTARTED")
	_, _ = fmt.Fprintln(w, "-------\t-----\t------\t-------\t--------\t-------")
	for _, call := range calls {
		if !filter.Matches(&call.Contact) {
			continue
		}
		if *status != "" && call.Status != *status {
			continue
		}
		if *outcome != "" && call.Outcome != *outcome {
			continue
		}
		shown++
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			call.Contact.FullName(), call.Contact.Phone, call.Status, call.Outcome,
			formatDuration(call.Duration), call.StartedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No calls found")
	}
	return nil
}

func parseWhen(at string) (time.Time, error) {
	if at == "" {
		return time.Time{}, fmt.Errorf("--at is required (RFC3339, e.g. 2024-02-01T15:00:00Z)")
	}
	when, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value: %w", err)
	}
	return when, nil
}

func formatDuration(seconds int) string {
	if seconds == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
