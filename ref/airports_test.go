package ref

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const kTestHeader = `"id","ident","type","name","latitude_deg","longitude_deg","elevation_ft","continent","iso_country","iso_region","municipality","scheduled_service","gps_code","iata_code","local_code"`

func airportRow(ident, typ, name, lat, long, country, city, gps, iata string) string {
	return fmt.Sprintf(`1,"%s","%s","%s",%s,%s,100,"EU","%s","X-Y","%s","yes","%s","%s",""`,
		ident, typ, name, lat, long, country, city, gps, iata)
}

func cacheInDir(t *testing.T, url string) *AirportCache {
	ac := NewAirportCache(nil, t.TempDir())
	ac.URL = url
	return ac
}

func TestLoadAirports(t *testing.T) {
	body := kTestHeader + "\n" +
		airportRow("UKBB", "large_airport", "Boryspil International Airport", "50.345", "30.894", "UA", "Kyiv", "UKBB", "KBP") + "\n" +
		airportRow("EGLL", "large_airport", "Heathrow \"LHR\", London", "51.47", "-0.46", "GB", "London", "EGLL", "LHR") + "\n" +
		airportRow("XX01", "closed", "Gone Field", "10.0", "10.0", "US", "Nowhere", "", "") + "\n" +
		airportRow("YY02", "seaplane_base", "Wet Field", "20.0", "20.0", "US", "Splash", "", "") + "\n" +
		`2,"SHRT","small_airport","too few columns"` + "\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	ac := cacheInDir(t, server.URL)
	airports,err := ac.LoadAirports(context.Background())
	if err != nil {
		t.Fatalf("LoadAirports: %v", err)
	}

	// The allow-list and the short row drop everything but the two real airports
	if len(airports) != 2 {
		t.Fatalf("expected 2 airports, got %d: %v", len(airports), airports)
	}

	a := airports[0]
	if a.Id != "UKBB" || *a.Icao != "UKBB" || *a.Iata != "KBP" {
		t.Errorf("bad ids: %+v", a)
	}
	if a.City != "Kyiv" || a.Country != "UA" {
		t.Errorf("bad enrichment fields: %+v", a)
	}
	if a.Latlong == nil || a.Latlong.Lat != 50.345 {
		t.Errorf("bad position: %+v", a.Latlong)
	}

	// Quoted embedded comma survives
	if airports[1].Name != `Heathrow LHR, London` {
		t.Errorf("quoted name mangled: %q", airports[1].Name)
	}
}

func TestAirportIdPriority(t *testing.T) {
	body := kTestHeader + "\n" +
		airportRow("ID01", "small_airport", "Has Both", "1", "1", "US", "A", "KAAA", "AAA") + "\n" +
		airportRow("ID02", "small_airport", "Iata Only", "1", "1", "US", "B", "", "BBB") + "\n" +
		airportRow("XY99", "heliport", "Ident Only", "1", "1", "US", "C", "", "") + "\n" +
		airportRow("", "heliport", "Nothing At All", "1", "1", "US", "D", "", "") + "\n"

	airports := ParseAirportsCSV(body)
	if len(airports) != 4 {
		t.Fatalf("expected 4 airports, got %d", len(airports))
	}

	if airports[0].Id != "KAAA" {
		t.Errorf("ICAO should win over IATA, got %q", airports[0].Id)
	}
	if airports[1].Id != "BBB" {
		t.Errorf("IATA should win over ident, got %q", airports[1].Id)
	}
	if airports[2].Id != "XY99" {
		t.Errorf("ident should win over nothing, got %q", airports[2].Id)
	}
	if airports[3].Id == "" {
		t.Errorf("empty everything should still get a generated id")
	}
}

// Second load must come off disk, not the network.
func TestCacheRoundtrip(t *testing.T) {
	hits := 0
	body := kTestHeader + "\n" +
		airportRow("UKBB", "large_airport", "Boryspil", "50.345", "30.894", "UA", "Kyiv", "UKBB", "KBP") + "\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	ac := cacheInDir(t, server.URL)

	first,err := ac.LoadAirports(context.Background())
	if err != nil { t.Fatalf("first load: %v", err) }

	second,err := ac.LoadAirports(context.Background())
	if err != nil { t.Fatalf("second load: %v", err) }

	if hits != 1 {
		t.Errorf("expected 1 network fetch, got %d", hits)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Id != first[0].Id {
		t.Errorf("cache did not round-trip: %v vs %v", first, second)
	}
}

// A corrupt or empty cache file is a miss, not an error.
func TestCacheCorruptionRefetches(t *testing.T) {
	body := kTestHeader + "\n" +
		airportRow("UKBB", "large_airport", "Boryspil", "50.345", "30.894", "UA", "Kyiv", "UKBB", "KBP") + "\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	defer server.Close()

	ac := cacheInDir(t, server.URL)
	if err := os.MkdirAll(filepath.Dir(ac.CacheFile), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ac.CacheFile, []byte("not a gob stream"), 0644); err != nil {
		t.Fatal(err)
	}

	airports,err := ac.LoadAirports(context.Background())
	if err != nil {
		t.Fatalf("LoadAirports over corrupt cache: %v", err)
	}
	if len(airports) != 1 || airports[0].Id != "UKBB" {
		t.Errorf("expected a refetch, got %v", airports)
	}
}

// No cache and no network is the one failure that surfaces; it must be an
// error, not a panic, and not fabricated data.
func TestNoCacheNoNetwork(t *testing.T) {
	ac := cacheInDir(t, "http://127.0.0.1:1/airports.csv")
	if _,err := ac.LoadAirports(context.Background()); err == nil {
		t.Errorf("expected an error with no cache and no network")
	}
}
