// ABOUTME: Contact CLI commands
// ABOUTME: List with filters, add, update, stats, and bulk actions over a selection
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"calldeck/api"
	"calldeck/contacts"
	"calldeck/models"
)

// ListContactsCommand lists contacts, filtered client-side by the same
// engine the TUI uses.
func ListContactsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts list", flag.ExitOnError)
	search := fs.String("search", "", "Search across name, email, phone, company")
	status := fs.String("status", "", "Filter by status (active, inactive, blocked, dnd)")
	group := fs.String("group", "", "Filter by group name")
	source := fs.String("source", "", "Filter by source (manual, import, api, website)")
	_ = fs.Parse(args)

	ctx := context.Background()
	all, err := client.ListContacts(ctx)
	if err != nil {
		return friendlyError(err)
	}

	filter := contacts.Filter{Search: *search, Status: *status, Source: *source}
	if *group != "" {
		groups, err := client.ListGroups(ctx)
		if err != nil {
			return friendlyError(err)
		}
		found := false
		for _, g := range groups {
			if strings.EqualFold(g.Name, *group) {
				id := g.ID
				filter.GroupID = &id
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("group not found: %s", *group)
		}
	}

	visible := filter.Apply(all)
	if len(visible) == 0 {
		fmt.Println("No contacts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPHONE\tEMAIL\tCOMPANY\tSTATUS\tGROUP\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t-----\t-------\t------\t-----\t--")
	for _, contact := range visible {
		email := contact.Email
		if email == "" {
			email = "-"
		}
		company := contact.CompanyName
		if company == "" {
			company = "-"
		}
		groupName := "-"
		if contact.Group != nil {
			groupName = contact.Group.Name
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			contact.FullName(), contact.Phone, email, company, contact.Status, groupName, contact.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d contact(s)\n", len(visible))
	return nil
}

// AddContactCommand creates a new contact.
func AddContactCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts add", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name (required)")
	lastName := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number (required)")
	company := fs.String("company", "", "Company name")
	jobTitle := fs.String("job-title", "", "Job title")
	city := fs.String("city", "", "City")
	group := fs.String("group", "", "Group name")
	notes := fs.String("notes", "", "Notes about the contact")
	_ = fs.Parse(args)

	ctx := context.Background()
	in := &api.ContactInput{
		FirstName:   *firstName,
		LastName:    *lastName,
		Email:       *email,
		Phone:       *phone,
		CompanyName: *company,
		JobTitle:    *jobTitle,
		City:        *city,
		Notes:       *notes,
	}

	if *group != "" {
		groupID, err := resolveGroup(ctx, client, *group)
		if err != nil {
			return err
		}
		in.Group = &groupID
	}

	contact, err := client.CreateContact(ctx, in)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("✓ Contact created: %s (ID: %s)\n", contact.FullName(), contact.ID)
	if contact.Email != "" {
		fmt.Printf("  Email: %s\n", contact.Email)
	}
	fmt.Printf("  Phone: %s\n", contact.Phone)
	if contact.Group != nil {
		fmt.Printf("  Group: %s\n", contact.Group.Name)
	}
	return nil
}

// UpdateContactCommand updates an existing contact. Flags must come before
// the contact ID.
func UpdateContactCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts update", flag.ExitOnError)
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	company := fs.String("company", "", "Company name")
	jobTitle := fs.String("job-title", "", "Job title")
	city := fs.String("city", "", "City")
	status := fs.String("status", "", "Status")
	group := fs.String("group", "", "Group name (\"none\" clears membership)")
	notes := fs.String("notes", "", "Notes about the contact")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("contact ID is required")
	}
	contactID, err := uuid.Parse(fs.Args()[0])
	if err != nil {
		return fmt.Errorf("invalid contact ID: %w", err)
	}

	ctx := context.Background()
	all, err := client.ListContacts(ctx)
	if err != nil {
		return friendlyError(err)
	}
	var existing *models.Contact
	for i := range all {
		if all[i].ID == contactID {
			existing = &all[i]
			break
		}
	}
	if existing == nil {
		return fmt.Errorf("contact not found: %s", contactID)
	}

	in := &api.ContactInput{
		FirstName:   existing.FirstName,
		LastName:    existing.LastName,
		Email:       existing.Email,
		Phone:       existing.Phone,
		CompanyName: existing.CompanyName,
		JobTitle:    existing.JobTitle,
		City:        existing.City,
		Status:      existing.Status,
		Notes:       existing.Notes,
	}
	if existing.Group != nil {
		id := existing.Group.ID
		in.Group = &id
	}

	if *firstName != "" {
		in.FirstName = *firstName
	}
	if *lastName != "" {
		in.LastName = *lastName
	}
	if *email != "" {
		in.Email = *email
	}
	if *phone != "" {
		in.Phone = *phone
	}
	if *company != "" {
		in.CompanyName = *company
	}
	if *jobTitle != "" {
		in.JobTitle = *jobTitle
	}
	if *city != "" {
		in.City = *city
	}
	if *status != "" {
		in.Status = *status
	}
	if *notes != "" {
		in.Notes = *notes
	}
	switch {
	case *group == "none":
		in.Group = nil
	case *group != "":
		groupID, err := resolveGroup(ctx, client, *group)
		if err != nil {
			return err
		}
		in.Group = &groupID
	}

	updated, err := client.UpdateContact(ctx, contactID, in)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("✓ Contact updated: %s (ID: %s)\n", updated.FullName(), contactID)
	return nil
}

// StatsCommand prints the aggregate contact counters.
func StatsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts stats", flag.ExitOnError)
	_ = fs.Parse(args)

	stats, err := client.Stats(context.Background())
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Total contacts: %d\n\n", stats.Total)
	printCounter("By status", stats.ByStatus)
	printCounter("By source", stats.BySource)
	printCounter("By group", stats.ByGroup)
	return nil
}

// BulkCommand applies one action to a set of contact ids in a single
// request. The selection is passed as repeated positional ids.
func BulkCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts bulk", flag.ExitOnError)
	action := fs.String("action", "", "Action: delete, set_status, assign_group, schedule_call")
	status := fs.String("status", "", "New status (for set_status)")
	group := fs.String("group", "", "Group name (for assign_group)")
	_ = fs.Parse(args)

	if *action == "" {
		return fmt.Errorf("--action is required")
	}
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

	ctx := context.Background()
	req := &api.BulkRequest{ContactIDs: ids, Action: *action}
	switch *action {
	case contacts.BulkSetStatus:
		if *status == "" {
			return fmt.Errorf("--status is required for set_status")
		}
		req.Params = map[string]string{"status": *status}
	case contacts.BulkAssignGroup:
		if *group == "" {
			return fmt.Errorf("--group is required for assign_group")
		}
		groupID, err := resolveGroup(ctx, client, *group)
		if err != nil {
			return err
		}
		req.Params = map[string]string{"group": groupID.String()}
	case contacts.BulkDelete, contacts.BulkScheduleCall:
	default:
		return fmt.Errorf("unknown bulk action: %s", *action)
	}

	if err := client.BulkAction(ctx, req); err != nil {
		return friendlyError(err)
	}

	fmt.Printf("✓ Bulk %s applied to %d contact(s)\n", *action, len(ids))
	return nil
}

func resolveGroup(ctx context.Context, client *api.Client, name string) (uuid.UUID, error) {
	groups, err := client.ListGroups(ctx)
	if err != nil {
		return uuid.Nil, friendlyError(err)
	}
	for _, g := range groups {
		if strings.EqualFold(g.Name, name) {
			return g.ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("group not found: %s", name)
}

func printCounter(title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	fmt.Println(title + ":")
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "  %s\t%d\n", k, counts[k])
	}
	_ = w.Flush()
	fmt.Println()
}
