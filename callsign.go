package airtrack

import(
	"fmt"
	"regexp"
	"strconv"
)

/* Callsigns, as broadcast by the live feed

1. Scheduled airlines mostly use an ICAO flight number: AUI101, SWA3848
2. Some use the 2-letter IATA code instead: PS101, U23915
3. Private aircraft often squawk their registration: N839AL
4. Some airlines send a bare flight number: 4517 (was SWA4517)
5. Plus assorted junk: '00000000', '????????', ''

The airline resolver wants the carrier prefix out of (1) and (2); the rest
classify so callers at least know what they're looking at.
*/

type CallsignType int
const(
	Undefined         CallsignType = iota
	JunkCallsign
	Registration
	IcaoFlightNumber  // 3-letter carrier code + number
	IataFlightNumber  // 2-char carrier code + number
	BareFlightNumber  // number, no carrier code at all
)

type Callsign struct {
	Raw           string

	CallsignType
	Registration  string
	Prefix        string // carrier code, for the Icao/Iata flavors
	ATCSuffix     string // should be one char, really
	Number        int64
}

func (c Callsign)String() string {
	switch c.CallsignType {
	case IcaoFlightNumber, IataFlightNumber:
		return fmt.Sprintf("%s%d", c.Prefix, c.Number) // Strips leading zeroes and ATC suffix
	default:
		return c.Raw
	}
}

var(
	// An N-number is one to five chars, starts with a non-zero digit, never
	// contains I or O, and doesn't end in a run of three letters.
	regRE  = regexp.MustCompile("^(N[1-9][0-9A-HJ-NP-Z]{0,4})$")
	icaoRE = regexp.MustCompile("^([A-Z]{3})([0-9]{1,4})([A-Z]?)$")
	iataRE = regexp.MustCompile("^([A-Z][A-Z0-9])([0-9]{1,4})([A-Z]?)$")
	bareRE = regexp.MustCompile("^([0-9]{2,4})$")
)

func NewCallsign(callsign string) (ret Callsign) {
	ret.Raw = callsign

	if reg := regRE.FindStringSubmatch(callsign); reg != nil {
		ret.Registration = callsign
		ret.CallsignType = Registration
		return
	}

	if icao := icaoRE.FindStringSubmatch(callsign); icao != nil {
		ret.Number,_ = strconv.ParseInt(icao[2], 10, 64) // no errors here :)
		ret.Prefix = icao[1]
		ret.ATCSuffix = icao[3]
		ret.CallsignType = IcaoFlightNumber
		return
	}

	if iata := iataRE.FindStringSubmatch(callsign); iata != nil {
		ret.Number,_ = strconv.ParseInt(iata[2], 10, 64)
		ret.Prefix = iata[1]
		ret.ATCSuffix = iata[3]
		ret.CallsignType = IataFlightNumber
		return
	}

	if bare := bareRE.FindStringSubmatch(callsign); bare != nil {
		ret.Number,_ = strconv.ParseInt(bare[1], 10, 64)
		ret.CallsignType = BareFlightNumber
		return
	}

	ret.CallsignType = JunkCallsign
	return
}
