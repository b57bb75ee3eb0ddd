// ABOUTME: Static business-classification taxonomy for the onboarding wizard
// ABOUTME: Options at each level depend on the parent level's selection
package onboarding

// Option is one selectable entry at a wizard level.
type Option struct {
	ID          string
	Name        string
	Description string
}

// Catalog resolves the option set for each wizard level. Industries and
// business models are flat lists; subcategories and business types key off
// the parent selection. An unknown parent yields an empty list, which the
// wizard treats as blocked rather than an error.
type Catalog struct {
	industries     []Option
	subcategories  map[string][]Option
	businessTypes  map[string][]Option
	businessModels []Option
}

// DefaultCatalog returns the built-in taxonomy.
func DefaultCatalog() *Catalog {
	return &Catalog{
		industries: []Option{
			{ID: "retail", Name: "Retail", Description: "Physical and online stores"},
			{ID: "healthcare", Name: "Healthcare", Description: "Medical services and products"},
			{ID: "realestate", Name: "Real Estate", Description: "Property sales and rentals"},
			{ID: "education", Name: "Education", Description: "Educational services"},
			{ID: "finance", Name: "Finance", Description: "Financial services"},
			{ID: "technology", Name: "Technology", Description: "Tech products and services"},
		},
		subcategories: map[string][]Option{
			"retail": {
				{ID: "supermarket", Name: "Supermarket", Description: "Grocery and daily needs"},
				{ID: "electronics", Name: "Electronics", Description: "Electronic devices"},
				{ID: "apparel", Name: "Apparel", Description: "Clothing and fashion"},
				{ID: "automotive", Name: "Automotive", Description: "Vehicle sales and service"},
			},
			"healthcare": {
				{ID: "clinic", Name: "Clinic", Description: "Medical consultation"},
				{ID: "pharmacy", Name: "Pharmacy", Description: "Medicine and health products"},
				{ID: "diagnostic", Name: "Diagnostic", Description: "Medical testing"},
			},
		},
		businessTypes: map[string][]Option{
			"supermarket": {
				{ID: "grocery", Name: "Grocery Store", Description: "Food and daily essentials"},
				{ID: "multicategory", Name: "Multi-category", Description: "Various product categories"},
			},
			"electronics": {
				{ID: "mobile", Name: "Mobile Phones", Description: "Smartphones and accessories"},
				{ID: "computers", Name: "Computers", Description: "Laptops and desktops"},
				{ID: "appliances", Name: "Home Appliances", Description: "Kitchen and home appliances"},
			},
		},
		businessModels: []Option{
			{ID: "franchise", Name: "Franchise", Description: "Licensed business model"},
			{ID: "independent", Name: "Independent", Description: "Standalone business"},
			{ID: "chain", Name: "Chain", Description: "Multiple locations"},
			{ID: "online", Name: "Online Only", Description: "E-commerce business"},
		},
	}
}

// Industries returns the level-1 options.
func (c *Catalog) Industries() []Option {
	return c.industries
}

// Subcategories returns the level-2 options under an industry.
func (c *Catalog) Subcategories(industry string) []Option {
	return c.subcategories[industry]
}

// BusinessTypes returns the level-3 options under a subcategory.
func (c *Catalog) BusinessTypes(subcategory string) []Option {
	return c.businessTypes[subcategory]
}

// BusinessModels returns the level-4 options.
func (c *Catalog) BusinessModels() []Option {
	return c.businessModels
}
