package ref

import (
	"testing"

	"github.com/skypies/geo"

	"github.com/skypies/airtrack"
)

type resolveTest struct {
	Callsign string
	Name     string
	Region   airtrack.Region
}

var resolveTests = []resolveTest{
	{"AUI",      "Ukraine International Airlines", airtrack.RegionEurope},   // bare 3-letter code, exact
	{"AUI101",   "Ukraine International Airlines", airtrack.RegionEurope},   // ICAO prefix
	{"PS101",    "Ukraine International Airlines", airtrack.RegionEurope},   // 2-char prefix
	{" PS101 ",  "Ukraine International Airlines", airtrack.RegionEurope},   // untrimmed input
	{"SWA4517",  "Southwest Airlines",             airtrack.RegionAmericas},
	{"QF12",     "Qantas",                         airtrack.RegionOceania},
	{"ZZZ999",   "Unknown airline",                airtrack.RegionUnclassified},
	{"N761QA",   "Unknown airline",                airtrack.RegionUnclassified},
	{"",         "Unknown airline",                airtrack.RegionUnclassified},
}

func TestResolveAirline(t *testing.T) {
	r := NewAirlineResolver()
	for _,test := range resolveTests {
		a := r.Resolve(test.Callsign)
		if a.Name != test.Name {
			t.Errorf("'%s' - expected %q, got %q", test.Callsign, test.Name, a.Name)
		}
		if a.Region != test.Region {
			t.Errorf("'%s' - expected region %v, got %v", test.Callsign, test.Region, a.Region)
		}
	}
}

func TestResolveUnknownIsSentinel(t *testing.T) {
	r := NewAirlineResolver()
	if a := r.Resolve("ZZZ999"); !a.IsUnknown() {
		t.Errorf("unresolved callsign should be the unknown sentinel, got %v", a)
	}
}

func states(positions ...geo.Latlong) []airtrack.AircraftState {
	out := []airtrack.AircraftState{}
	for i,pos := range positions {
		out = append(out, airtrack.AircraftState{
			Callsign:    "ZZ" + string(rune('0'+i)),
			Latlong:     pos,
			HasPosition: true,
		})
	}
	return out
}

func TestInferRegion(t *testing.T) {
	r := NewAirlineResolver()

	// Two aircraft around Kyiv; centroid is solidly in the Europe box
	all := states(
		geo.Latlong{Lat:50.4, Long:30.5},
		geo.Latlong{Lat:49.8, Long:24.0},
	)
	if got := r.InferRegion("ZZ", all); got != airtrack.RegionEurope {
		t.Errorf("expected Europe, got %v", got)
	}

	// No samples for the prefix at all
	if got := r.InferRegion("QQ", all); got != airtrack.RegionUnclassified {
		t.Errorf("no samples - expected Unclassified, got %v", got)
	}

	// Samples without positions don't count
	noFix := []airtrack.AircraftState{{Callsign:"ZZ1"}}
	if got := r.InferRegion("ZZ", noFix); got != airtrack.RegionUnclassified {
		t.Errorf("no positions - expected Unclassified, got %v", got)
	}

	// A centroid outside every box
	southPacific := states(geo.Latlong{Lat:-60, Long:-150})
	if got := r.InferRegion("ZZ", southPacific); got != airtrack.RegionUnclassified {
		t.Errorf("open ocean - expected Unclassified, got %v", got)
	}
}
