// ABOUTME: Entry point for the calldeck admin console
// ABOUTME: Routes to auth, contacts, calls, onboarding, and TUI commands
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"calldeck/api"
	"calldeck/cli"
	"calldeck/config"
	"calldeck/session"
	"calldeck/tui"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	apiBase := flag.String("api-base", "", "Backend base URL (default: $CALLDECK_API_BASE)")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("calldeck version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	cfg := config.Load()
	if *apiBase != "" {
		cfg.BaseURL = *apiBase
	}

	store := session.NewFileStore()
	client := api.New(cfg, store)

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "auth":
		runSub(command, commandArgs, map[string]commandFunc{
			"login":  cli.LoginCommand,
			"signup": cli.SignupCommand,
			"whoami": cli.WhoamiCommand,
			"logout": cli.LogoutCommand,
		}, client)

	case "contacts":
		if len(commandArgs) > 0 && commandArgs[0] == "import" {
			if err := cli.ImportCommand(client, cfg, commandArgs[1:]); err != nil {
				log.Fatalf("Error: %v", err)
			}
			return
		}
		runSub(command, commandArgs, map[string]commandFunc{
			"list":            cli.ListContactsCommand,
			"add":             cli.AddContactCommand,
			"update":          cli.UpdateContactCommand,
			"stats":           cli.StatsCommand,
			"bulk":            cli.BulkCommand,
			"groups":          cli.ListGroupsCommand,
			"create-group":    cli.CreateGroupCommand,
			"import-template": cli.ImportTemplateCommand,
		}, client)

	case "calls":
		runSub(command, commandArgs, map[string]commandFunc{
			"schedule":      cli.ScheduleCallCommand,
			"bulk-schedule": cli.BulkScheduleCommand,
			"history":       cli.CallHistoryCommand,
		}, client)

	case "onboarding":
		runSub(command, commandArgs, map[string]commandFunc{
			"select":  cli.SelectCommand,
			"profile": cli.ProfileCommand,
			"show":    cli.ShowCommand,
		}, client)

	case "leads":
		if err := cli.ListLeadsCommand(client, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "campaigns":
		if err := cli.ListCampaignsCommand(client, commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}

	case "viz":
		runSub(command, commandArgs, map[string]commandFunc{
			"groups": cli.VizGroupsCommand,
			"funnel": cli.VizFunnelCommand,
		}, client)

	case "tui":
		if err := tui.Run(client, cfg); err != nil {
			log.Fatalf("TUI failed: %v", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

type commandFunc func(*api.Client, []string) error

func runSub(parent string, args []string, commands map[string]commandFunc, client *api.Client) {
	if len(args) == 0 {
		fmt.Printf("Error: %s requires a subcommand\n", parent)
		printUsage()
		os.Exit(1)
	}

	fn, ok := commands[args[0]]
	if !ok {
		fmt.Printf("Unknown %s command: %s\n\n", parent, args[0])
		printUsage()
		os.Exit(1)
	}

	if err := fn(client, args[1:]); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func printUsage() {
	fmt.Printf(`calldeck v%s - Sales calling admin console

USAGE:
  calldeck [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --api-base <url>       Backend base URL (default: $CALLDECK_API_BASE)

COMMANDS:
  auth                   Authentication commands
  contacts               Contact management and CSV import
  calls                  Call scheduling and history
  onboarding             Business setup wizard
  leads                  List leads
  campaigns              List campaigns
  viz                    Visualization commands
  tui                    Start the full-screen console

AUTH COMMANDS:
  calldeck auth login       Sign in
    --email <email>           Account email (required)
    --password <password>     Password (prompted when omitted)

  calldeck auth signup      Create an account
    --email <email>           Account email (required)
    --first-name <name>       First name (required)
    --last-name <name>        Last name (required)
    --company <name>          Company name (required)
    --phone <phone>           Phone number

  calldeck auth whoami      Show the signed-in user
  calldeck auth logout      Clear the stored session

CONTACT COMMANDS:
  calldeck contacts list    List contacts
    --search <text>           Match any of name, email, phone, company
    --status <status>         Filter by status (active, inactive, blocked, dnd)
    --group <name>            Filter by group name
    --source <source>         Filter by source (manual, import, api, website)

  calldeck contacts add     Add a contact
    --first-name <name>       First name (required)
    --phone <phone>           Phone number (required)
    --last-name, --email, --company, --job-title, --city, --notes, --group

  calldeck contacts update [flags] <id>  Update a contact
    Same flags as add; --group none clears the group

  calldeck contacts stats   Show contact counters
  calldeck contacts bulk    Run a bulk action over contact ids
    --action <action>         delete, set_status, assign_group, schedule_call
    --status <status>         Target status for set_status
    --group <name>            Target group for assign_group
    --at <rfc3339>            Call time for schedule_call

  calldeck contacts groups           List groups
  calldeck contacts create-group     Create a group
  calldeck contacts import <file>    Upload a CSV and poll until done
    --group <name>                     Target group for imported contacts
  calldeck contacts import-template  Download the CSV import template

CALL COMMANDS:
  calldeck calls schedule        Schedule a call for one contact
  calldeck calls bulk-schedule   Schedule calls for several contacts
  calldeck calls history         Show call history

ONBOARDING COMMANDS:
  calldeck onboarding select     Walk the business type wizard
  calldeck onboarding profile    Submit the business profile
  calldeck onboarding show       Show the saved business profile

VIZ COMMANDS:
  calldeck viz groups            Contact-group graph (DOT)
  calldeck viz funnel            Lead funnel graph (DOT)
    --output <file>                Write DOT to a file instead of stdout

TUI:
  calldeck tui                   Start the interactive console
`, version)
}
