// Package ref contains the reference-data lookups: the airport catalogue
// and the airline callsign tables. The airport side caches to a single
// flat file; the airline side is a static table.
package ref

import(
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/skypies/geo"

	"github.com/skypies/airtrack"
)

const(
	kAirportsURL   = "https://davidmegginson.github.io/ourairports-data/airports.csv"
	kCacheFilename = "airports.gob"
)

// {{{ column indexes

// Columns of the published airports.csv, by position:
//  id,ident,type,name,latitude_deg,longitude_deg,elevation_ft,continent,
//  iso_country,iso_region,municipality,scheduled_service,gps_code,
//  iata_code,local_code,...
// We read by index, so rows that are too short get skipped rather than
// misread. Columns past kMinColumns are ignored.
const(
	colIdent    = 1
	colType     = 2
	colName     = 3
	colLatitude = 4
	colLongitude = 5
	colCountry  = 8
	colCity     = 10
	colGpsCode  = 12 // effectively the ICAO code
	colIataCode = 13

	kMinColumns = 15
)

// }}}
// {{{ kAirportTypes

// The allow-list. Everything else (closed, seaplane_base, balloonport,
// navaids...) is discarded during ingestion, never stored.
var kAirportTypes = map[string]bool{
	"small_airport":  true,
	"medium_airport": true,
	"large_airport":  true,
	"heliport":       true,
}

// }}}

// {{{ AirportCache{}

// AirportCache loads the airport reference dataset, preferring the on-disk
// snapshot over the network. The file is the only staleness signal: if it
// exists and decodes to a non-empty slice, it is trusted outright. There
// is no expiry metadata and no locking, so two overlapping loads can race
// on the write; last writer wins, and both writers hold equivalent data.
type AirportCache struct {
	Client    *http.Client
	URL       string
	CacheFile string
}

func NewAirportCache(c *http.Client, cacheDir string) *AirportCache {
	if c == nil {
		c = &http.Client{Timeout: 60 * time.Second}
	}
	return &AirportCache{
		Client:    c,
		URL:       kAirportsURL,
		CacheFile: filepath.Join(cacheDir, kCacheFilename),
	}
}

// }}}

// {{{ ac.LoadAirports

// LoadAirports returns the full filtered airport collection. Cache write
// failures are logged and swallowed; the in-memory result already
// satisfies the caller. A fetch failure with no usable cache is the one
// case that returns an error, and even that is non-fatal upstream (the
// pipeline serves an empty collection).
func (ac *AirportCache)LoadAirports(ctx context.Context) ([]airtrack.AirportRecord, error) {
	if cached := ac.readCache(); len(cached) > 0 {
		return cached, nil
	}

	body,err := ac.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("ref/airports: fetch: %v", err)
	}

	airports := ParseAirportsCSV(string(body))
	log.Printf("ref/airports: ingested %s airports from %s",
		humanize.Comma(int64(len(airports))), ac.URL)

	if err := ac.writeCache(airports); err != nil {
		log.Printf("ref/airports: cache write failed (ignored): %v", err)
	}

	return airports, nil
}

// }}}
// {{{ ac.fetch

func (ac *AirportCache)fetch(ctx context.Context) ([]byte, error) {
	req,err := http.NewRequestWithContext(ctx, "GET", ac.URL, nil)
	if err != nil { return nil, err }

	resp,err := ac.Client.Do(req)
	if err != nil { return nil, err }
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// }}}
// {{{ ac.readCache, ac.writeCache

// readCache treats every failure mode — missing file, unreadable file,
// gob corruption, empty collection — identically: as a miss.
func (ac *AirportCache)readCache() []airtrack.AirportRecord {
	data,err := os.ReadFile(ac.CacheFile)
	if err != nil {
		return nil
	}

	airports := []airtrack.AirportRecord{}
	if err := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&airports); err != nil {
		log.Printf("ref/airports: cache corrupt, refetching: %v", err)
		return nil
	}

	return airports
}

func (ac *AirportCache)writeCache(airports []airtrack.AirportRecord) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(airports); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(ac.CacheFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(ac.CacheFile, buf.Bytes(), 0644)
}

// }}}

// {{{ ParseAirportsCSV

// ParseAirportsCSV turns the raw delimited text into filtered records.
// The first row is the header and is discarded; rows with fewer than
// kMinColumns fields are silently skipped.
func ParseAirportsCSV(s string) []airtrack.AirportRecord {
	out := []airtrack.AirportRecord{}

	for i,vals := range parseQuotedCSV(s) {
		if i == 0 { continue } // header
		if len(vals) < kMinColumns { continue }
		if !kAirportTypes[vals[colType]] { continue }
		out = append(out, rowToAirport(vals))
	}

	return out
}

// }}}
// {{{ rowToAirport

func rowToAirport(vals []string) airtrack.AirportRecord {
	a := airtrack.AirportRecord{
		Name:    vals[colName],
		City:    vals[colCity],
		Country: vals[colCountry],
	}

	if icao := vals[colGpsCode]; icao != "" {
		a.Icao = &icao
	}
	if iata := vals[colIataCode]; iata != "" {
		a.Iata = &iata
	}

	lat,errLat   := strconv.ParseFloat(vals[colLatitude], 64)
	long,errLong := strconv.ParseFloat(vals[colLongitude], 64)
	if errLat == nil && errLong == nil {
		a.Latlong = &geo.Latlong{Lat:lat, Long:long}
	}

	// Id priority: ICAO, IATA, the source's own ident, then a generated
	// token so the record is at least addressable.
	switch {
	case a.Icao != nil:          a.Id = *a.Icao
	case a.Iata != nil:          a.Id = *a.Iata
	case vals[colIdent] != "":   a.Id = vals[colIdent]
	default:                     a.Id = uuid.New().String()
	}

	return a
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
