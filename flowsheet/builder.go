package flowsheet

import (
	"github.com/rs/xid"

	"github.com/prosimlab/unitops"
	"github.com/prosimlab/unitops/costing"
	"github.com/prosimlab/unitops/utility"
)

// A Builder can build flowsheets.
type Builder struct {
	indexProvider costing.IndexProvider
	catalog       *utility.Catalog
	costYear      int
}

// MakeBuilder creates a builder with the default CEPCI table, the default
// utility catalog, and 2017 as the costing year.
func MakeBuilder() Builder {
	return Builder{
		costYear: 2017,
	}
}

// WithIndexProvider sets the cost-index provider to use for costing.
func (b Builder) WithIndexProvider(p costing.IndexProvider) Builder {
	b.indexProvider = p
	return b
}

// WithUtilityCatalog sets the utility agent catalog to price duties with.
func (b Builder) WithUtilityCatalog(c *utility.Catalog) Builder {
	b.catalog = c
	return b
}

// WithCostYear sets the year whose cost index prices the equipment.
func (b Builder) WithCostYear(year int) Builder {
	b.costYear = year
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.costYear <= 0 {
		unitops.PanicConfigErrorf(
			"costing year must be positive, got %d", b.costYear)
	}
}

// Build builds a flowsheet.
func (b Builder) Build(name string) *Flowsheet {
	b.parametersMustBeValid()

	f := &Flowsheet{
		id:            xid.New().String(),
		name:          name,
		unitIndex:     make(map[string]int),
		streamIndex:   make(map[string]int),
		indexProvider: b.indexProvider,
		catalog:       b.catalog,
		costYear:      b.costYear,
		costReports:   make(map[string]*CostReport),
	}

	if f.indexProvider == nil {
		f.indexProvider = costing.DefaultIndexTable()
	}

	if f.catalog == nil {
		f.catalog = utility.DefaultCatalog()
	}

	return f
}
