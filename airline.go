package airtrack

import "fmt"

// AirlineEntity is what a callsign prefix resolves to. Known carriers come
// out of a static table (ref/airlines.go) with Region filled in; unknown
// prefixes get the UnknownAirline sentinel, and callers wanting a region
// for those go through the centroid inference path instead.
type AirlineEntity struct {
	Prefix   string // the 2-3 letter callsign code the entry is keyed by
	Name     string
	Country  string
	Region   Region
}

var UnknownAirline = AirlineEntity{Name:"Unknown airline", Region:RegionUnclassified}

func (a AirlineEntity)IsUnknown() bool { return a.Prefix == "" }

func (a AirlineEntity)String() string {
	if a.IsUnknown() { return a.Name }
	return fmt.Sprintf("%s (%s, %s)", a.Name, a.Prefix, a.Country)
}
