package ref

import(
	"strings"

	"github.com/skypies/geo"

	"github.com/skypies/airtrack"
)

// {{{ kAirlines

// kAirlines is keyed by both the 3-letter ICAO code and the 2-letter IATA
// code for each carrier, so both callsign flavors resolve to the same
// entity. Deliberately small; anything not listed goes through the
// centroid inference path instead.
var kAirlines = map[string]airtrack.AirlineEntity{}

func init() {
	add := func(icao, iata, name, country string, region airtrack.Region) {
		kAirlines[icao] = airtrack.AirlineEntity{Prefix:icao, Name:name, Country:country, Region:region}
		kAirlines[iata] = airtrack.AirlineEntity{Prefix:iata, Name:name, Country:country, Region:region}
	}

	add("AUI", "PS", "Ukraine International Airlines", "Ukraine",        airtrack.RegionEurope)
	add("DLH", "LH", "Lufthansa",                      "Germany",        airtrack.RegionEurope)
	add("BAW", "BA", "British Airways",                "United Kingdom", airtrack.RegionEurope)
	add("AFR", "AF", "Air France",                     "France",         airtrack.RegionEurope)
	add("KLM", "KL", "KLM Royal Dutch Airlines",       "Netherlands",    airtrack.RegionEurope)
	add("RYR", "FR", "Ryanair",                        "Ireland",        airtrack.RegionEurope)
	add("EZY", "U2", "easyJet",                        "United Kingdom", airtrack.RegionEurope)
	add("WZZ", "W6", "Wizz Air",                       "Hungary",        airtrack.RegionEurope)
	add("THY", "TK", "Turkish Airlines",               "Turkey",         airtrack.RegionEurope)
	add("UAL", "UA", "United Airlines",                "United States",  airtrack.RegionAmericas)
	add("AAL", "AA", "American Airlines",              "United States",  airtrack.RegionAmericas)
	add("DAL", "DL", "Delta Air Lines",                "United States",  airtrack.RegionAmericas)
	add("SWA", "WN", "Southwest Airlines",             "United States",  airtrack.RegionAmericas)
	add("ACA", "AC", "Air Canada",                     "Canada",         airtrack.RegionAmericas)
	add("UAE", "EK", "Emirates",                       "United Arab Emirates", airtrack.RegionAsia)
	add("QTR", "QR", "Qatar Airways",                  "Qatar",          airtrack.RegionAsia)
	add("SIA", "SQ", "Singapore Airlines",             "Singapore",      airtrack.RegionAsia)
	add("JAL", "JL", "Japan Airlines",                 "Japan",          airtrack.RegionAsia)
	add("ANA", "NH", "All Nippon Airways",             "Japan",          airtrack.RegionAsia)
	add("CCA", "CA", "Air China",                      "China",          airtrack.RegionAsia)
	add("ETH", "ET", "Ethiopian Airlines",             "Ethiopia",       airtrack.RegionAfrica)
	add("SAA", "SA", "South African Airways",          "South Africa",   airtrack.RegionAfrica)
	add("QFA", "QF", "Qantas",                         "Australia",      airtrack.RegionOceania)
	add("ANZ", "NZ", "Air New Zealand",                "New Zealand",    airtrack.RegionOceania)
}

// }}}

// {{{ AirlineResolver{}

// AirlineResolver maps a broadcast callsign to an operating airline.
// Resolution can fail; that's the UnknownAirline sentinel, not an error.
type AirlineResolver struct {
	table map[string]airtrack.AirlineEntity
}

func NewAirlineResolver() *AirlineResolver {
	return &AirlineResolver{table:kAirlines}
}

// }}}
// {{{ r.Resolve

// Resolve tries, in order: the whole callsign (catches a bare carrier
// code), the parsed 3-letter ICAO prefix, then the first two characters
// (IATA-style). Anything left over is the unknown sentinel.
func (r *AirlineResolver)Resolve(callsign string) airtrack.AirlineEntity {
	callsign = strings.TrimSpace(callsign)
	if callsign == "" { return airtrack.UnknownAirline }

	if a,ok := r.table[callsign]; ok {
		return a
	}

	if cs := airtrack.NewCallsign(callsign); cs.CallsignType == airtrack.IcaoFlightNumber {
		if a,ok := r.table[cs.Prefix]; ok {
			return a
		}
	}

	if len(callsign) >= 2 {
		if a,ok := r.table[callsign[:2]]; ok {
			return a
		}
	}

	return airtrack.UnknownAirline
}

// }}}
// {{{ r.InferRegion

// InferRegion is the fallback for prefixes the table has never heard of:
// average the positions of every aircraft currently flying under the
// prefix, and classify the centroid against the fixed region boxes. No
// position samples, or a centroid outside every box, is Unclassified.
func (r *AirlineResolver)InferRegion(prefix string, states []airtrack.AircraftState) airtrack.Region {
	n := 0
	sumLat, sumLong := 0.0, 0.0

	for _,s := range states {
		if !s.HasPosition { continue }
		if !strings.HasPrefix(s.Callsign, prefix) { continue }
		sumLat  += s.Latlong.Lat
		sumLong += s.Latlong.Long
		n++
	}

	if n == 0 {
		return airtrack.RegionUnclassified
	}

	centroid := geo.Latlong{Lat: sumLat/float64(n), Long: sumLong/float64(n)}
	return airtrack.ClassifyRegion(centroid)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
