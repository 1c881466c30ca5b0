// Package pipeline runs one fetch→normalize→enrich→aggregate pass over
// the feeds and hands back an immutable snapshot. One call is one
// short-lived, cancellable unit of work; there is no background scheduler
// here, and concurrent runs are not coordinated — callers either avoid
// overlapping runs or accept last-writer-wins on the snapshot they hold.
package pipeline

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/skypies/airtrack"
	"github.com/skypies/airtrack/config"
	"github.com/skypies/airtrack/opensky"
	"github.com/skypies/airtrack/ref"
	"github.com/skypies/airtrack/report"
	"github.com/skypies/airtrack/wiki"
)

// Snapshot is the complete output of one run. It shares nothing with any
// previous snapshot; presentation code just swaps the whole thing.
type Snapshot struct {
	FetchedAt time.Time
	States    []airtrack.AircraftState
	Airports  []airtrack.AirportRecord
	Stats     report.Stats
}

// Pipeline owns one explicitly-constructed instance of each component.
// No package singletons; tests swap in whatever fakes they like.
type Pipeline struct {
	Feed     *opensky.OpenSky
	Airports *ref.AirportCache
	Airlines *ref.AirlineResolver
	Wiki     *wiki.Wiki
}

func New(cfg config.Config) *Pipeline {
	feed := opensky.NewOpenSky(&http.Client{Timeout: cfg.Telemetry.Timeout()})
	feed.URL = cfg.Telemetry.URL

	airports := ref.NewAirportCache(
		&http.Client{Timeout: cfg.Reference.Timeout()}, cfg.Reference.CacheDir)
	airports.URL = cfg.Reference.URL

	w := wiki.NewWiki(&http.Client{Timeout: cfg.Wiki.Timeout()})
	w.URLStem = cfg.Wiki.URLStem

	return &Pipeline{
		Feed:     feed,
		Airports: airports,
		Airlines: ref.NewAirlineResolver(),
		Wiki:     w,
	}
}

// Run never fails the caller. The worst case is fallback telemetry plus
// an empty airport collection, which still renders.
func (p *Pipeline)Run(ctx context.Context) Snapshot {
	states := p.Feed.FetchStates(ctx)

	airports,err := p.Airports.LoadAirports(ctx)
	if err != nil {
		log.Printf("pipeline: reference data unavailable, continuing without: %v", err)
		airports = []airtrack.AirportRecord{}
	}

	return Snapshot{
		FetchedAt: time.Now().UTC(),
		States:    states,
		Airports:  airports,
		Stats:     report.Aggregate(states, p.Airlines),
	}
}
