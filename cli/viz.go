// ABOUTME: Visualization CLI commands
// ABOUTME: Renders group distribution and lead funnel graphs as DOT
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"calldeck/api"
	"calldeck/models"
	"calldeck/viz"
)

// VizGroupsCommand renders the contact group distribution graph.
func VizGroupsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("viz groups", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	ctx := context.Background()
	stats, err := client.Stats(ctx)
	if err != nil {
		return friendlyError(err)
	}
	groups, err := client.ListGroups(ctx)
	if err != nil {
		return friendlyError(err)
	}

	dot, err := viz.GenerateGroupGraph(ctx, stats, groups)
	if err != nil {
		return err
	}
	return writeDOT(*output, dot)
}

// VizFunnelCommand renders the lead funnel graph.
func VizFunnelCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("viz funnel", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	_ = fs.Parse(args)

	dot, err := viz.GenerateFunnelGraph(context.Background(), models.SampleLeads())
	if err != nil {
		return err
	}
	return writeDOT(*output, dot)
}

func writeDOT(output, dot string) error {
	if output != "" {
		return os.WriteFile(output, []byte(dot), 0644)
	}
	fmt.Println(dot)
	return nil
}
