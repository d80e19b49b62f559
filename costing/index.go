package costing

import (
	"github.com/prosimlab/unitops"
)

// An IndexProvider supplies the chemical-engineering plant cost index for a
// given year. The flowsheet queries it at costing time.
type IndexProvider interface {
	Index(year int) (float64, error)
}

// An IndexTable is an IndexProvider backed by a plain year-to-value table.
type IndexTable struct {
	values map[int]float64
}

// NewIndexTable creates an index table from a year-to-value map.
func NewIndexTable(values map[int]float64) *IndexTable {
	t := &IndexTable{values: make(map[int]float64)}
	for year, v := range values {
		if v <= 0 {
			unitops.PanicConfigErrorf(
				"cost index for year %d must be positive, got %g", year, v)
		}

		t.values[year] = v
	}

	return t
}

// DefaultIndexTable returns the CEPCI annual averages for 1990 through 2019.
func DefaultIndexTable() *IndexTable {
	return NewIndexTable(map[int]float64{
		1990: 357.6,
		1991: 361.3,
		1992: 358.2,
		1993: 359.2,
		1994: 368.1,
		1995: 381.1,
		1996: 381.7,
		1997: 386.5,
		1998: 389.5,
		1999: 390.6,
		2000: 394.1,
		2001: 394.3,
		2002: 395.6,
		2003: 402.0,
		2004: 444.2,
		2005: 468.2,
		2006: 499.6,
		2007: 525.4,
		2008: 575.4,
		2009: 521.9,
		2010: 550.8,
		2011: 585.7,
		2012: 584.6,
		2013: 567.3,
		2014: 576.1,
		2015: 556.8,
		2016: 541.7,
		2017: 567.5,
		2018: 603.1,
		2019: 607.5,
	})
}

// Index returns the cost index for a year. Years outside the table return a
// ValidationError.
func (t *IndexTable) Index(year int) (float64, error) {
	v, found := t.values[year]
	if !found {
		return 0, unitops.ValidationErrorf(
			"no cost index is available for year %d", year)
	}

	return v, nil
}
