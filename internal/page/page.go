// Package page describes which optional UI regions a page has. Components ask
// the context instead of assuming a region exists.
package page

// Region is one optional part of a page.
type Region uint8

const (
	RegionJobList Region = 1 << iota
	RegionFilters
	RegionApplyModal
	RegionPostForm
)

// Context is the set of regions present on a page.
type Context struct {
	regions Region
}

// New returns a context with the given regions.
func New(regions ...Region) Context {
	var c Context
	for _, r := range regions {
		c.regions |= r
	}
	return c
}

// Has reports whether r is present.
func (c Context) Has(r Region) bool {
	return c.regions&r == r
}

// Predefined pages.
var (
	Board   = New(RegionJobList, RegionFilters, RegionApplyModal)
	PostJob = New(RegionPostForm)
	Listing = New(RegionJobList, RegionFilters)
)
