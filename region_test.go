package airtrack

import (
	"testing"

	"github.com/skypies/geo"
)

type RegionTest struct {
	Lat, Long float64
	Region
}

var regionTests = []RegionTest{
	{50.45,  30.52, RegionEurope},      // Kyiv
	{35.68, 139.69, RegionAsia},        // Tokyo
	{37.62,-122.38, RegionAmericas},    // SFO
	{ 9.00,  38.74, RegionAfrica},      // Addis Ababa
	{-33.95, 151.18, RegionOceania},    // Sydney
	{-60.00,-150.00, RegionUnclassified}, // southern Pacific, no box
	{36.00,  40.00, RegionEurope},      // Europe/Africa overlap band; Europe is tested first
}

func TestClassifyRegion(t *testing.T) {
	for _,test := range regionTests {
		got := ClassifyRegion(geo.Latlong{Lat:test.Lat, Long:test.Long})
		if got != test.Region {
			t.Errorf("(%.2f,%.2f) - expected %v, got %v", test.Lat, test.Long, test.Region, got)
		}
	}
}

// A point on a shared edge always lands in the box tested earlier, and
// that order never changes.
func TestClassifyRegionBoundaryIsStable(t *testing.T) {
	onEdge := geo.Latlong{Lat:50, Long:45} // eastern edge of Europe, western edge of Asia
	for i := 0; i < 100; i++ {
		if got := ClassifyRegion(onEdge); got != RegionEurope {
			t.Fatalf("edge point classified as %v, want Europe", got)
		}
	}
}
