// ABOUTME: Business-classification wizard state machine
// ABOUTME: Selecting at level k clears deeper levels; proceed needs all four set
package onboarding

import (
	"calldeck/models"
)

// Wizard levels, keyed 1-4.
const (
	LevelIndustry = iota + 1
	LevelSubcategory
	LevelBusinessType
	LevelBusinessModel
)

// Wizard walks the 4-level dependent selection chain. Choices are
// hierarchical: recording a value at level k invalidates everything deeper,
// because those options were derived from the old ancestor.
type Wizard struct {
	catalog   *Catalog
	level     int
	selection models.BusinessSelection
}

// NewWizard starts at level 1 with nothing recorded.
func NewWizard(catalog *Catalog) *Wizard {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Wizard{catalog: catalog, level: LevelIndustry}
}

// Resume restores a wizard from a saved selection, positioned at the first
// unfilled level.
func Resume(catalog *Catalog, saved models.BusinessSelection) *Wizard {
	w := NewWizard(catalog)
	w.selection = saved
	switch {
	case saved.Industry == "":
		w.level = LevelIndustry
	case saved.Subcategory == "":
		w.level = LevelSubcategory
	case saved.BusinessType == "":
		w.level = LevelBusinessType
	default:
		w.level = LevelBusinessModel
	}
	return w
}

// Level returns the current level, 1-4.
func (w *Wizard) Level() int {
	return w.level
}

// Selection returns a snapshot of the recorded values.
func (w *Wizard) Selection() models.BusinessSelection {
	return w.selection
}

// Options returns the choices offered at the current level, derived from
// the parent selection. Empty when the taxonomy defines none for the chosen
// parent.
func (w *Wizard) Options() []Option {
	switch w.level {
	case LevelIndustry:
		return w.catalog.Industries()
	case LevelSubcategory:
		return w.catalog.Subcategories(w.selection.Industry)
	case LevelBusinessType:
		return w.catalog.BusinessTypes(w.selection.Subcategory)
	case LevelBusinessModel:
		return w.catalog.BusinessModels()
	}
	return nil
}

// Blocked reports whether the current level offers no options. The wizard
// cannot advance past a blocked level; it is not an error.
func (w *Wizard) Blocked() bool {
	return len(w.Options()) == 0
}

// Choose records a value at the current level, clears every deeper level,
// and advances (staying put at level 4 for revision). Returns false when
// the value is not among the offered options.
func (w *Wizard) Choose(id string) bool {
	valid := false
	for _, opt := range w.Options() {
		if opt.ID == id {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}

	switch w.level {
	case LevelIndustry:
		w.selection.Industry = id
		w.selection.Subcategory = ""
		w.selection.BusinessType = ""
		w.selection.BusinessModel = ""
	case LevelSubcategory:
		w.selection.Subcategory = id
		w.selection.BusinessType = ""
		w.selection.BusinessModel = ""
	case LevelBusinessType:
		w.selection.BusinessType = id
		w.selection.BusinessModel = ""
	case LevelBusinessModel:
		w.selection.BusinessModel = id
	}

	if w.level < LevelBusinessModel {
		w.level++
	}
	return true
}

// Back moves one level up without clearing any recorded value, flooring at
// level 1.
func (w *Wizard) Back() {
	if w.level > LevelIndustry {
		w.level--
	}
}

// CanProceed reports whether all four levels hold a value, gating the hand
// off to the business-profile form.
func (w *Wizard) CanProceed() bool {
	return w.selection.Complete()
}

// LevelTitle names the current step for display.
func (w *Wizard) LevelTitle() string {
	switch w.level {
	case LevelIndustry:
		return "Select Industry Category"
	case LevelSubcategory:
		return "Select Business Subcategory"
	case LevelBusinessType:
		return "Select Specific Business Type"
	case LevelBusinessModel:
		return "Select Business Model"
	}
	return ""
}
