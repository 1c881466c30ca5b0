package airtrack

import(
	"fmt"

	"github.com/skypies/adsb"
	"github.com/skypies/geo"
)

// TriBool is for feed fields that are sometimes just not there. The zero
// value is TriUnknown, so a blank AircraftState says "don't know" rather
// than "no".
type TriBool int
const(
	TriUnknown TriBool = iota
	TriFalse
	TriTrue
)

func TriFromBool(b bool) TriBool {
	if b { return TriTrue }
	return TriFalse
}

func (t TriBool)String() string {
	switch t {
	case TriTrue:  return "true"
	case TriFalse: return "false"
	}
	return "unknown"
}

// AircraftState is one normalized record from the live feed. The Has*
// flags say which samples the row actually carried; a row with an id and
// nothing else is still a legitimate state ("no fix yet").
//
// States are never patched in place; a fresh fetch replaces the whole
// slice.
type AircraftState struct {
	Id             adsb.IcaoId  // may be empty
	Callsign       string       // trimmed; may be empty
	OriginCountry  string

	PosTime        int64        // epoch seconds; zero if the feed had none
	LastContact    int64

	Latlong        geo.Latlong
	HasPosition    bool

	Altitude       float64      // barometric, metres
	HasAltitude    bool

	GroundSpeed    float64      // m/s, as broadcast
	HasSpeed       bool

	Heading        float64      // degrees, clockwise from north
	HasHeading     bool

	VerticalRate   float64      // m/s, +ve climbing
	HasVerticalRate bool

	OnGround       TriBool
}

// SpeedKmh converts the feed's native m/s velocity for display. This is
// the only place the 3.6 lives; everything below the presentation boundary
// stays in feed units.
func (s AircraftState)SpeedKmh() float64 { return s.GroundSpeed * 3.6 }

// BestIdent is the display identifier: callsign when we have one, else the
// transponder id.
func (s AircraftState)BestIdent() string {
	if s.Callsign != "" { return s.Callsign }
	return string(s.Id)
}

func (s AircraftState)String() string {
	pos := "(no fix)"
	if s.HasPosition {
		pos = fmt.Sprintf("(%.4f,%.4f)", s.Latlong.Lat, s.Latlong.Long)
	}
	return fmt.Sprintf("%-8.8s %-9.9s %-18.18s %s %5.0fm %4.0fkm/h",
		s.Id, s.Callsign, pos, s.OnGround, s.Altitude, s.SpeedKmh())
}
