// ABOUTME: Business-profile accumulator
// ABOUTME: Builds USP and competitor lists incrementally before a single submit
package onboarding

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"calldeck/models"
)

var validate = validator.New()

// ProfileForm carries the two required free-text fields. The lists live on
// the builder because they are edited entry by entry.
type ProfileForm struct {
	Description    string `validate:"required"`
	TargetAudience string `validate:"required"`
}

// ProfileBuilder accumulates the business profile client-side. Lists are
// append-only and user-reorderable only by delete-and-re-add; duplicates
// are kept, insertion order is preserved.
type ProfileBuilder struct {
	form        ProfileForm
	usps        []string
	competitors []string
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{}
}

// SetDescription records the business description.
func (b *ProfileBuilder) SetDescription(s string) {
	b.form.Description = strings.TrimSpace(s)
}

// SetTargetAudience records the target audience.
func (b *ProfileBuilder) SetTargetAudience(s string) {
	b.form.TargetAudience = strings.TrimSpace(s)
}

// AddUSP trims and appends a unique selling point. Empty input is rejected;
// duplicates are not deduped. Returns whether the entry was added.
func (b *ProfileBuilder) AddUSP(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	b.usps = append(b.usps, s)
	return true
}

// AddCompetitor trims and appends a competitor name.
func (b *ProfileBuilder) AddCompetitor(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	b.competitors = append(b.competitors, s)
	return true
}

// RemoveUSP deletes by positional index. Out-of-range indexes are ignored.
func (b *ProfileBuilder) RemoveUSP(i int) {
	if i < 0 || i >= len(b.usps) {
		return
	}
	b.usps = append(b.usps[:i], b.usps[i+1:]...)
}

// RemoveCompetitor deletes by positional index.
func (b *ProfileBuilder) RemoveCompetitor(i int) {
	if i < 0 || i >= len(b.competitors) {
		return
	}
	b.competitors = append(b.competitors[:i], b.competitors[i+1:]...)
}

// USPs returns the current list in insertion order.
func (b *ProfileBuilder) USPs() []string {
	return b.usps
}

// Competitors returns the current list in insertion order.
func (b *ProfileBuilder) Competitors() []string {
	return b.competitors
}

// Validate checks the required free-text fields.
func (b *ProfileBuilder) Validate() error {
	if err := validate.Struct(b.form); err != nil {
		return err
	}
	return nil
}

// Payload combines the accumulated lists, the required fields, and the
// wizard's classification into the single create payload.
func (b *ProfileBuilder) Payload(selection models.BusinessSelection) *models.BusinessProfile {
	usps := make([]string, len(b.usps))
	copy(usps, b.usps)
	competitors := make([]string, len(b.competitors))
	copy(competitors, b.competitors)

	return &models.BusinessProfile{
		Industry:            selection.Industry,
		Subcategory:         selection.Subcategory,
		BusinessType:        selection.BusinessType,
		BusinessModel:       selection.BusinessModel,
		Description:         b.form.Description,
		TargetAudience:      b.form.TargetAudience,
		UniqueSellingPoints: usps,
		Competitors:         competitors,
	}
}
