package page

import "testing"

func TestContext_Has(t *testing.T) {
	tests := []struct {
		name   string
		ctx    Context
		region Region
		want   bool
	}{
		{"board has job list", Board, RegionJobList, true},
		{"board has apply modal", Board, RegionApplyModal, true},
		{"board has no post form", Board, RegionPostForm, false},
		{"post page has post form", PostJob, RegionPostForm, true},
		{"post page has no job list", PostJob, RegionJobList, false},
		{"listing has filters", Listing, RegionFilters, true},
		{"listing has no modal", Listing, RegionApplyModal, false},
		{"empty context", New(), RegionFilters, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.Has(tt.region); got != tt.want {
				t.Errorf("Has() = %v, want %v", got, tt.want)
			}
		})
	}
}
