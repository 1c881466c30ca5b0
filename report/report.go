// Package report derives display statistics from one normalized snapshot:
// extrema, per-region buckets, and per-carrier groups. Everything here is
// recomputed in full on each call and never persisted; the input slice is
// only read, never retained or mutated.
package report

import (
	"sort"

	"github.com/skypies/airtrack"
)

const kMaxGroups = 10

// {{{ Stats{}

// RegionBucket is one region's slice of the sky. Averages are over the
// records that actually carried the sample; an empty bucket averages to
// zero, not NaN.
type RegionBucket struct {
	Region       airtrack.Region
	Count        int
	AvgSpeedKmh  float64
	AvgAltitude  float64
}

// GroupStats is one carrier's (or, for unresolved callsigns, one raw
// identifier's) slice of the sky.
type GroupStats struct {
	Key          string
	Count        int
	AvgSpeedKmh  float64
	AvgAltitude  float64
}

type Stats struct {
	Total    int

	// Pointers to private copies; nil when no record carried the sample.
	// Ties go to the record seen first in input order.
	Fastest  *airtrack.AircraftState
	Highest  *airtrack.AircraftState
	Lowest   *airtrack.AircraftState

	// Regions always holds one bucket per region, in classification order
	// with Unclassified last, empty ones included.
	Regions  []RegionBucket

	// Groups is the top kMaxGroups by count, count ties broken by which
	// group was encountered first.
	Groups   []GroupStats
}

// }}}

// Resolver is the slice of the airline resolver that grouping needs.
type Resolver interface {
	Resolve(callsign string) airtrack.AirlineEntity
}

// {{{ Aggregate

func Aggregate(states []airtrack.AircraftState, resolver Resolver) Stats {
	st := Stats{Total: len(states)}

	for i := range states {
		s := states[i]
		if s.HasSpeed && (st.Fastest == nil || s.GroundSpeed > st.Fastest.GroundSpeed) {
			cp := s
			st.Fastest = &cp
		}
		if s.HasAltitude && (st.Highest == nil || s.Altitude > st.Highest.Altitude) {
			cp := s
			st.Highest = &cp
		}
		if s.HasAltitude && (st.Lowest == nil || s.Altitude < st.Lowest.Altitude) {
			cp := s
			st.Lowest = &cp
		}
	}

	st.Regions = regionBuckets(states)
	st.Groups = topGroups(states, resolver)

	return st
}

// }}}
// {{{ regionBuckets

type accumulator struct {
	count                  int
	speedSum, altSum       float64
	speedN, altN           int
}

func (a *accumulator)add(s airtrack.AircraftState) {
	a.count++
	if s.HasSpeed {
		a.speedSum += s.SpeedKmh()
		a.speedN++
	}
	if s.HasAltitude {
		a.altSum += s.Altitude
		a.altN++
	}
}

func (a accumulator)avgSpeed() float64 {
	if a.speedN == 0 { return 0 }
	return a.speedSum / float64(a.speedN)
}
func (a accumulator)avgAlt() float64 {
	if a.altN == 0 { return 0 }
	return a.altSum / float64(a.altN)
}

// regionBuckets classifies on position alone — region assignment here is
// independent of whether the airline resolver knows the callsign.
func regionBuckets(states []airtrack.AircraftState) []RegionBucket {
	accs := map[airtrack.Region]*accumulator{}
	for _,region := range airtrack.Regions {
		accs[region] = &accumulator{}
	}

	for _,s := range states {
		region := airtrack.RegionUnclassified
		if s.HasPosition {
			region = airtrack.ClassifyRegion(s.Latlong)
		}
		accs[region].add(s)
	}

	out := []RegionBucket{}
	for _,region := range airtrack.Regions {
		a := accs[region]
		out = append(out, RegionBucket{
			Region:      region,
			Count:       a.count,
			AvgSpeedKmh: a.avgSpeed(),
			AvgAltitude: a.avgAlt(),
		})
	}
	return out
}

// }}}
// {{{ topGroups

// topGroups keys on the resolved airline name, falling back to the raw
// identifier (callsign, else transponder id) when resolution comes back
// with the unknown sentinel.
func topGroups(states []airtrack.AircraftState, resolver Resolver) []GroupStats {
	accs := map[string]*accumulator{}
	firstSeen := map[string]int{}
	order := 0

	for _,s := range states {
		key := s.BestIdent()
		if resolver != nil {
			if airline := resolver.Resolve(s.Callsign); !airline.IsUnknown() {
				key = airline.Name
			}
		}
		if key == "" { key = "(unidentified)" }

		if _,ok := accs[key]; !ok {
			accs[key] = &accumulator{}
			firstSeen[key] = order
			order++
		}
		accs[key].add(s)
	}

	out := []GroupStats{}
	for key,a := range accs {
		out = append(out, GroupStats{
			Key:         key,
			Count:       a.count,
			AvgSpeedKmh: a.avgSpeed(),
			AvgAltitude: a.avgAlt(),
		})
	}

	sort.Slice(out, func(i,j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return firstSeen[out[i].Key] < firstSeen[out[j].Key]
	})

	if len(out) > kMaxGroups {
		out = out[:kMaxGroups]
	}
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
