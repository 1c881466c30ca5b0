package airtrack

import(
	"github.com/skypies/geo"
)

type Region int
const(
	RegionUnclassified Region = iota
	RegionEurope
	RegionAsia
	RegionAmericas
	RegionAfrica
	RegionOceania
)

func (r Region)String() string {
	switch r {
	case RegionEurope:   return "Europe"
	case RegionAsia:     return "Asia"
	case RegionAmericas: return "Americas"
	case RegionAfrica:   return "Africa"
	case RegionOceania:  return "Oceania"
	}
	return "Unclassified"
}

// Regions lists the classifiable regions in classification order, then
// Unclassified. Handy for building stable per-region output.
var Regions = []Region{
	RegionEurope, RegionAsia, RegionAmericas, RegionAfrica, RegionOceania,
	RegionUnclassified,
}

type regionBox struct {
	Region
	Box geo.LatlongBox
}

// KRegionBoxes is deliberately coarse and deliberately ordered: the boxes
// overlap, and a point on a shared edge classifies into whichever box is
// tested first. Keep it a plain list; anything cleverer changes the
// tie-breaking.
var KRegionBoxes = []regionBox{
	{RegionEurope,   geo.LatlongBox{SW:geo.Latlong{Lat: 35, Long: -25}, NE:geo.Latlong{Lat: 72, Long:  45}}},
	{RegionAsia,     geo.LatlongBox{SW:geo.Latlong{Lat:  5, Long:  45}, NE:geo.Latlong{Lat: 80, Long: 180}}},
	{RegionAmericas, geo.LatlongBox{SW:geo.Latlong{Lat:-56, Long:-170}, NE:geo.Latlong{Lat: 72, Long: -30}}},
	{RegionAfrica,   geo.LatlongBox{SW:geo.Latlong{Lat:-35, Long: -20}, NE:geo.Latlong{Lat: 37, Long:  52}}},
	{RegionOceania,  geo.LatlongBox{SW:geo.Latlong{Lat:-50, Long: 110}, NE:geo.Latlong{Lat:  0, Long: 180}}},
}

// contains treats the box edges as inside, so boundary points land in the
// first box that touches them.
func (rb regionBox)contains(pos geo.Latlong) bool {
	if pos.Lat  < rb.Box.SW.Lat  || pos.Lat  > rb.Box.NE.Lat  { return false }
	if pos.Long < rb.Box.SW.Long || pos.Long > rb.Box.NE.Long { return false }
	return true
}

func ClassifyRegion(pos geo.Latlong) Region {
	for _,rb := range KRegionBoxes {
		if rb.contains(pos) { return rb.Region }
	}
	return RegionUnclassified
}
