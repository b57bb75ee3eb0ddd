// ABOUTME: Contact group CLI commands
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"calldeck/api"
)

// ListGroupsCommand lists all contact groups.
func ListGroupsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts groups", flag.ExitOnError)
	_ = fs.Parse(args)

	groups, err := client.ListGroups(context.Background())
	if err != nil {
		return friendlyError(err)
	}

	if len(groups) == 0 {
		fmt.Println("No groups found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCOLOR\tCONTACTS\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t--------\t--")
	for _, group := range groups {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			group.Name, group.Color, group.ContactCount, group.ID.String()[:8])
	}
	_ = w.Flush()
	return nil
}

// CreateGroupCommand creates a contact group.
func CreateGroupCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("contacts create-group", flag.ExitOnError)
	name := fs.String("name", "", "Group name (required)")
	description := fs.String("description", "", "Group description")
	color := fs.String("color", "#3B82F6", "Display color")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	group, err := client.CreateGroup(context.Background(), *name, *description, *color)
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("✓ Group created: %s (ID: %s)\n", group.Name, group.ID)
	return nil
}
