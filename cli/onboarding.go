// ABOUTME: Onboarding CLI commands
// ABOUTME: Walks the classification wizard, builds the profile, submits, clears the draft
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"calldeck/api"
	"calldeck/draft"
	"calldeck/onboarding"
)

// stringList collects repeated flag values in order.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// SelectCommand records the 4-level business classification. Values are fed
// through the wizard so dependent-level invalidation applies even here;
// with no flags it prints the options for the next level.
func SelectCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("onboarding select", flag.ExitOnError)
	industry := fs.String("industry", "", "Industry category")
	subcategory := fs.String("subcategory", "", "Business subcategory")
	businessType := fs.String("type", "", "Specific business type")
	businessModel := fs.String("model", "", "Business model")
	reset := fs.Bool("reset", false, "Discard the saved draft and start over")
	_ = fs.Parse(args)

	store, err := draft.Open(draft.DefaultPath())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if *reset {
		if err := store.ClearSelection(); err != nil {
			return err
		}
		fmt.Println("✓ Draft cleared")
	}

	catalog := onboarding.DefaultCatalog()
	wizard := onboarding.NewWizard(catalog)
	if !*reset {
		if saved, found, err := store.LoadSelection(); err != nil {
			return err
		} else if found {
			wizard = onboarding.Resume(catalog, saved)
		}
	}

	for _, choice := range []string{*industry, *subcategory, *businessType, *businessModel} {
		if choice == "" {
			continue
		}
		if wizard.Blocked() {
			return fmt.Errorf("no options available at %q; the wizard is blocked here", wizard.LevelTitle())
		}
		if !wizard.Choose(choice) {
			return fmt.Errorf("%q is not a valid choice for %q", choice, wizard.LevelTitle())
		}
	}

	if err := store.SaveSelection(wizard.Selection()); err != nil {
		return err
	}

	sel := wizard.Selection()
	fmt.Printf("Selection: industry=%s subcategory=%s type=%s model=%s\n",
		dash(sel.Industry), dash(sel.Subcategory), dash(sel.BusinessType), dash(sel.BusinessModel))

	if wizard.CanProceed() {
		fmt.Println("✓ Classification complete. Next: `calldeck onboarding profile`")
		return nil
	}
	if wizard.Blocked() {
		fmt.Printf("No options defined under the current selection; revise an earlier level with --reset\n")
		return nil
	}

	fmt.Printf("\n%s:\n", wizard.LevelTitle())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, opt := range wizard.Options() {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n", opt.ID, opt.Name, opt.Description)
	}
	_ = w.Flush()
	return nil
}

// ProfileCommand submits the business profile using the saved wizard draft.
// The draft is cleared only after the submit succeeds.
func ProfileCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("onboarding profile", flag.ExitOnError)
	description := fs.String("description", "", "Business description (required)")
	audience := fs.String("audience", "", "Target audience (required)")
	var usps stringList
	var competitors stringList
	fs.Var(&usps, "usp", "Unique selling point (repeatable)")
	fs.Var(&competitors, "competitor", "Competitor name (repeatable)")
	_ = fs.Parse(args)

	store, err := draft.Open(draft.DefaultPath())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	selection, found, err := store.LoadSelection()
	if err != nil {
		return err
	}
	if !found || !selection.Complete() {
		return fmt.Errorf("business classification is incomplete: run `calldeck onboarding select` first")
	}

	builder := onboarding.NewProfileBuilder()
	builder.SetDescription(*description)
	builder.SetTargetAudience(*audience)
	for _, usp := range usps {
		builder.AddUSP(usp)
	}
	for _, competitor := range competitors {
		builder.AddCompetitor(competitor)
	}
	if err := builder.Validate(); err != nil {
		return fmt.Errorf("--description and --audience are required")
	}

	payload := builder.Payload(selection)
	if err := client.SubmitBusinessProfile(context.Background(), payload); err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			return err
		}
		return friendlyError(err)
	}

	if err := store.ClearSelection(); err != nil {
		return err
	}

	fmt.Println("✓ Business profile saved")
	return nil
}

// ShowCommand prints the stored business profile.
func ShowCommand(client *api.Client, args []string) error {
	fs := flag.NewFlagSet("onboarding show", flag.ExitOnError)
	_ = fs.Parse(args)

	profile, err := client.GetBusinessProfile(context.Background())
	if err != nil {
		return friendlyError(err)
	}

	fmt.Printf("Classification: %s / %s / %s / %s\n",
		profile.Industry, profile.Subcategory, profile.BusinessType, profile.BusinessModel)
	fmt.Printf("Description:    %s\n", profile.Description)
	fmt.Printf("Audience:       %s\n", profile.TargetAudience)
	if len(profile.UniqueSellingPoints) > 0 {
		fmt.Printf("USPs:           %s\n", strings.Join(profile.UniqueSellingPoints, "; "))
	}
	if len(profile.Competitors) > 0 {
		fmt.Printf("Competitors:    %s\n", strings.Join(profile.Competitors, "; "))
	}
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
