// Package opensky polls the live state-vector feed and normalizes it into
// AircraftState records. The feed is best-effort: every failure mode
// (transport, bad status, garbled JSON, empty sky) degrades to a fixed
// fallback set, never to an error the UI would have to render.
package opensky

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/skypies/adsb"
	"github.com/skypies/geo"

	"github.com/skypies/airtrack"
)

const kURLAllStates = "https://opensky-network.org/api/states/all"

// {{{ OpenSky{}

type OpenSky struct {
	Client *http.Client
	URL    string
}

func NewOpenSky(c *http.Client) *OpenSky {
	if c == nil {
		c = &http.Client{Timeout: 20 * time.Second}
	}
	return &OpenSky{Client:c, URL:kURLAllStates}
}

// }}}
// {{{ db.Url2Body

func (db *OpenSky)Url2Body(ctx context.Context, url string) ([]byte, error) {
	req,err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil { return nil, err }

	resp,err := db.Client.Do(req)
	if err != nil { return nil, err }
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opensky: bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// }}}

// {{{ StateEnvelope{}

// StateEnvelope is the feed's top-level object. Both fields are optional;
// rows arrive as positional arrays and are decoded individually so one
// corrupt row can't take out its siblings.
type StateEnvelope struct {
	Time   *int64            `json:"time"`
	States []json.RawMessage `json:"states"`
}

// }}}
// {{{ FallbackStates, Fallback

// FallbackStates is what gets shown when the live feed is down, empty or
// garbled. Three real-looking aircraft, so the map never renders blank.
// This is a product decision, not a bug; see the tests before changing it.
var FallbackStates = []airtrack.AircraftState{
	{
		Id:            adsb.IcaoId("508035a"),
		Callsign:      "AUI101",
		OriginCountry: "Ukraine",
		Latlong:       geo.Latlong{Lat:50.45, Long:30.52},
		HasPosition:   true,
		Altitude:      9144, HasAltitude: true,
		GroundSpeed:   231,  HasSpeed:    true,
		Heading:       270,  HasHeading:  true,
		OnGround:      airtrack.TriFalse,
	},
	{
		Id:            adsb.IcaoId("3c6444"),
		Callsign:      "DLH9U",
		OriginCountry: "Germany",
		Latlong:       geo.Latlong{Lat:50.03, Long:8.56},
		HasPosition:   true,
		Altitude:      10668, HasAltitude: true,
		GroundSpeed:   250,   HasSpeed:    true,
		Heading:       90,    HasHeading:  true,
		OnGround:      airtrack.TriFalse,
	},
	{
		Id:            adsb.IcaoId("a1b2c3"),
		Callsign:      "UAL900",
		OriginCountry: "United States",
		Latlong:       geo.Latlong{Lat:37.62, Long:-122.38},
		HasPosition:   true,
		Altitude:      11277, HasAltitude: true,
		GroundSpeed:   245,   HasSpeed:    true,
		Heading:       180,   HasHeading:  true,
		OnGround:      airtrack.TriFalse,
	},
}

// Fallback returns a fresh copy each time, so callers can't scribble on
// the fixture.
func Fallback() []airtrack.AircraftState {
	return append([]airtrack.AircraftState{}, FallbackStates...)
}

// }}}

// {{{ rowToState

// Feed slot positions. Everything past kPosVerticalRate is ignored.
const(
	kPosIcao24        = 0
	kPosCallsign      = 1
	kPosOriginCountry = 2
	kPosTimePosition  = 3
	kPosLastContact   = 4
	kPosLongitude     = 5
	kPosLatitude      = 6
	kPosBaroAltitude  = 7
	kPosOnGround      = 8
	kPosVelocity      = 9
	kPosHeading       = 10
	kPosVerticalRate  = 11
)

func rowToState(row airtrack.RawRow) airtrack.AircraftState {
	s := airtrack.AircraftState{}

	if id,ok := row.StringAt(kPosIcao24); ok {
		s.Id = adsb.IcaoId(id)
	}
	if cs,ok := row.StringAt(kPosCallsign); ok {
		s.Callsign = strings.TrimSpace(cs)
	}
	if c,ok := row.StringAt(kPosOriginCountry); ok {
		s.OriginCountry = c
	}

	s.PosTime,_     = row.IntAt(kPosTimePosition)
	s.LastContact,_ = row.IntAt(kPosLastContact)

	long,okLong := row.DoubleAt(kPosLongitude)
	lat,okLat   := row.DoubleAt(kPosLatitude)
	if okLong && okLat {
		s.Latlong = geo.Latlong{Lat:lat, Long:long}
		s.HasPosition = true
	}

	s.Altitude,s.HasAltitude         = row.DoubleAt(kPosBaroAltitude)
	s.GroundSpeed,s.HasSpeed         = row.DoubleAt(kPosVelocity)
	s.Heading,s.HasHeading           = row.DoubleAt(kPosHeading)
	s.VerticalRate,s.HasVerticalRate = row.DoubleAt(kPosVerticalRate)

	if ong,ok := row.BoolAt(kPosOnGround); ok {
		s.OnGround = airtrack.TriFromBool(ong)
	}

	return s
}

// }}}
// {{{ Normalize

// Normalize maps the envelope into at most MaxLiveAircraft states. Rows
// that fail to decode are dropped; an envelope that yields nothing at all
// becomes the fallback set. A row with an id but all-null kinematics is
// still emitted — callers treat that as "no fix yet", not as noise.
func Normalize(env StateEnvelope) []airtrack.AircraftState {
	out := []airtrack.AircraftState{}

	for _,raw := range env.States {
		if len(out) >= airtrack.MaxLiveAircraft { break }

		row := airtrack.RawRow{}
		if err := json.Unmarshal(raw, &row); err != nil {
			continue // this row only; siblings still parse
		}
		out = append(out, rowToState(row))
	}

	if len(out) == 0 {
		return Fallback()
	}
	return out
}

// }}}
// {{{ ParseStates

func ParseStates(body []byte) ([]airtrack.AircraftState, error) {
	env := StateEnvelope{}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("opensky: envelope decode: %v", err)
	}
	return Normalize(env), nil
}

// }}}
// {{{ db.FetchStates

// FetchStates runs one poll of the feed. It never returns an error;
// cancellation, timeouts, bad statuses and garbled bodies all land on the
// fallback set.
func (db *OpenSky)FetchStates(ctx context.Context) []airtrack.AircraftState {
	body,err := db.Url2Body(ctx, db.URL)
	if err != nil {
		log.Printf("opensky: fetch failed, serving fallback: %v", err)
		return Fallback()
	}

	states,err := ParseStates(body)
	if err != nil {
		log.Printf("opensky: %v; serving fallback", err)
		return Fallback()
	}

	return states
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
