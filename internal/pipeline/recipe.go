package pipeline

import (
	"fmt"
	"sort"

	"giclean/pkg/contracts/domain"
)

// RecipeOptions carries the cleaning configuration recipes are built from.
// Every offset that was a magic number in the recorded macros is a named
// option here.
type RecipeOptions struct {
	// CleanedDir receives the xlsx outputs of the delivery-order flows.
	CleanedDir string
	// ReturnsDir receives the return-data csv output.
	ReturnsDir string
	// CSVDir receives the database-export csv output.
	CSVDir string

	// HeaderRows is the count of report banner rows above the header in
	// the raw delivery-order exports.
	HeaderRows int
	// LeadingColumnStrips lists the successive leading-column strip passes
	// of the delivery-order flows, one count per pass.
	LeadingColumnStrips []int
	// ReturnLeadingColumns is the leading-column strip of the return flow.
	ReturnLeadingColumns int
	// SubtotalRowIndex is the zero-based index of the stray subtotal row
	// removed after stripping, while the header still sits at index 0.
	SubtotalRowIndex int

	CanonicalOrder      []string
	KeyColumn           string
	AllowMissingColumns bool
	Overwrite           bool
}

// Recipe is a named, fixed sequence of cleaning steps. No transitions
// depend on data content.
type Recipe struct {
	Name        string
	Description string
	Steps       []Step
}

// Registry holds the named recipes built from one set of options.
type Registry struct {
	recipes map[string]*Recipe
}

// NewRegistry builds the recipe registry from the given options.
func NewRegistry(opts RecipeOptions) *Registry {
	r := &Registry{recipes: make(map[string]*Recipe)}

	doStrips := func() []Step {
		steps := []Step{NewStripRowsStep(opts.HeaderRows)}
		for _, count := range opts.LeadingColumnStrips {
			steps = append(steps, NewStripColumnsStep(count))
		}
		return append(steps, NewStripRowAtStep(opts.SubtotalRowIndex))
	}

	r.register(&Recipe{
		Name:        "gi_trend_clean",
		Description: "Clean a delivery-order export for the GI trend dashboard feed",
		Steps: append(doStrips(),
			NewPromoteHeaderStep(),
			NewReorderStep(opts.CanonicalOrder, opts.AllowMissingColumns),
			NewBlankFilterStep(opts.KeyColumn),
			NewWriteStep(opts.CleanedDir, ExtXLSX, opts.Overwrite, false),
		),
	})

	r.register(&Recipe{
		Name:        "log_trend",
		Description: "Strip a log export without writing, as a dry run of the log flow",
		Steps:       doStrips(),
	})

	r.register(&Recipe{
		Name:        "log_raw",
		Description: "Strip a log export and save it as a dated workbook",
		Steps: append(doStrips(),
			NewWriteStep(opts.CleanedDir, ExtXLSX, opts.Overwrite, false),
		),
	})

	r.register(&Recipe{
		Name:        "return_clean",
		Description: "Clean a return-data export and save it as dated UTF-8 csv",
		Steps: []Step{
			NewStripRowsStep(opts.HeaderRows),
			NewStripColumnsStep(opts.ReturnLeadingColumns),
			NewStripRowAtStep(opts.SubtotalRowIndex),
			NewWriteStep(opts.ReturnsDir, ExtCSV, opts.Overwrite, true),
		},
	})

	r.register(&Recipe{
		Name:        "gi_db_clean",
		Description: "Normalize a cleaned csv into the database load schema",
		Steps: []Step{
			NewPromoteHeaderStep(),
			NewNormalizeHeadersStep(),
			NewMapColumnsStep(domain.ColumnMapping, domain.ColumnsToDrop),
			NewTrimCellsStep(),
			NewNormalizeDatesStep(domain.DateColumns),
			NewNormalizeNumbersStep(domain.NumericColumns),
			NewWriteStep(opts.CSVDir, ExtCSV, opts.Overwrite, false),
		},
	})

	return r
}

func (r *Registry) register(recipe *Recipe) {
	r.recipes[recipe.Name] = recipe
}

// Get returns the named recipe.
func (r *Registry) Get(name string) (*Recipe, error) {
	recipe, ok := r.recipes[name]
	if !ok {
		return nil, fmt.Errorf("unknown recipe %q (available: %v)", name, r.Names())
	}
	return recipe, nil
}

// Names returns the registered recipe names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.recipes))
	for name := range r.recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
