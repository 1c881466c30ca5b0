package airtrack

import(
	"fmt"

	"github.com/skypies/geo"
)

// AirportRecord is one row of the reference dataset, post-filter. Id is
// the first non-empty of: ICAO code, IATA code, the source's own ident,
// or a generated token — so it is always non-empty and stable for as long
// as the cache file lives.
type AirportRecord struct {
	Id       string
	Name     string
	City     string
	Country  string

	Iata     *string
	Icao     *string
	Latlong  *geo.Latlong
}

func (a AirportRecord)String() string {
	code := a.Id
	if a.Iata != nil { code = *a.Iata }
	pos := ""
	if a.Latlong != nil {
		pos = fmt.Sprintf(" (%.3f,%.3f)", a.Latlong.Lat, a.Latlong.Long)
	}
	return fmt.Sprintf("%-4.4s %s, %s%s", code, a.Name, a.Country, pos)
}
