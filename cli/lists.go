// ABOUTME: Leads and campaigns CLI listings
// ABOUTME: Sample-backed views sharing the contacts filter engine
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"calldeck/api"
	"calldeck/contacts"
	"calldeck/models"
)

// ListLeadsCommand lists leads filtered by status and search term.
func ListLeadsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("leads list", flag.ExitOnError)
	search := fs.String("search", "", "Search across contact name, email, phone, company")
	status := fs.String("status", "", "Filter by status (interested, not_interested, not_picked_up, follow_up)")
	_ = fs.Parse(args)

	leads := models.SampleLeads()
	filter := contacts.Filter{Search: *search}

	shown := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CONTACT\tCOMPANY\tSTATUS\tSCORE\tNEXT FOLLOW-UP")
	_, _ = fmt.Fprintln(w, "-------\t-------\t------\t-----\t--------------")
	for _, lead := range leads {
		if !filter.Matches(&lead.Contact) {
			continue
		}
		if *status != "" && lead.Status != *status {
			continue
		}
		shown++
		followUp := lead.NextFollowUp
		if followUp == "" {
			followUp = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			lead.Contact.FullName(), lead.Contact.CompanyName, lead.Status, lead.Score, followUp)
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No leads found")
	}
	return nil
}

// ListCampaignsCommand lists campaigns filtered by status.
func ListCampaignsCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("campaigns list", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status (active, scheduled, paused, completed, stopped)")
	_ = fs.Parse(args)

	campaigns := models.SampleCampaigns()

	shown := 0
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSTATUS\tCONTACTS\tCOMPLETED\tSUCCESS")
	_, _ = fmt.Fprintln(w, "----\t------\t--------\t---------\t-------")
	for _, campaign := range campaigns {
		if *status != "" && campaign.Status != *status {
			continue
		}
		shown++
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.0f%%\n",
			campaign.Name, campaign.Status, campaign.TotalContacts, campaign.CompletedCalls, campaign.SuccessRate)
	}
	_ = w.Flush()

	if shown == 0 {
		fmt.Println("No campaigns found")
	}
	return nil
}
