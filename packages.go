package sdk

// Static package catalog. The backend owns pricing; this mirror exists so
// clients can render the pricing page and validate a package id before
// starting checkout.
var packageCatalog = []Package{
	{
		ID:              "standard",
		Name:            "Standard",
		Subtitle:        "For flexible schedules",
		Price:           30,
		DiscountedPrice: 20,
		Duration:        "30 days",
		Features: []PackageFeature{
			{Text: "Instant slot alerts by email", Important: true},
			{Text: "Up to 3 test centers"},
			{Text: "30 days of monitoring"},
		},
	},
	{
		ID:              "premium",
		Name:            "Premium",
		Subtitle:        "Fastest road to a test date",
		Price:           50,
		DiscountedPrice: 35,
		Duration:        "90 days",
		Popular:         true,
		Highlight:       "Most popular",
		Features: []PackageFeature{
			{Text: "Instant slot alerts by email", Important: true},
			{Text: "Unlimited test centers"},
			{Text: "90 days of monitoring"},
			{Text: "Priority alert delivery", Description: "Alerts go out ahead of the standard queue"},
		},
	},
}

// Packages returns the static catalog. The slice is a copy; mutating it
// does not affect the catalog.
func Packages() []Package {
	out := make([]Package, len(packageCatalog))
	copy(out, packageCatalog)
	return out
}

// PackageByID looks up a catalog entry.
func PackageByID(id string) (Package, bool) {
	for _, pkg := range packageCatalog {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}
