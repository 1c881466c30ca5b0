package airtrack

// go test -v github.com/skypies/airtrack

import "testing"

type CallsignTest struct {
	Raw        string
	Normalized string
	Prefix     string
	CallsignType
}

var tests = []CallsignTest{
	{"",         "",         "",    JunkCallsign},
	{"-.-.-.-.", "-.-.-.-.", "",    JunkCallsign},
	{"N761QA",   "N761QA",   "",    Registration},
	{"UAL100",   "UAL100",   "UAL", IcaoFlightNumber},
	{"PS101",    "PS101",    "PS",  IataFlightNumber},
	{"U23915",   "U23915",   "U2",  IataFlightNumber},
	{"987",      "987",      "",    BareFlightNumber},
	{"AUI010",   "AUI10",    "AUI", IcaoFlightNumber}, // Check zeroes get stripped
	{"SKW750R",  "SKW750",   "SKW", IcaoFlightNumber}, // Check suffix gets stripped
}

func TestParseCallsign(t *testing.T) {
	for _,test := range tests {
		cs := NewCallsign(test.Raw)
		if cs.CallsignType != test.CallsignType {
			t.Errorf("'%s' - expected type %v, got %v", test.Raw, test.CallsignType, cs.CallsignType)
		}
		if cs.String() != test.Normalized {
			t.Errorf("'%s' - expected string %q, got %q", test.Raw, test.Normalized, cs.String())
		}
		if cs.Prefix != test.Prefix {
			t.Errorf("'%s' - expected prefix %q, got %q", test.Raw, test.Prefix, cs.Prefix)
		}
	}
}
