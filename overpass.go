package osm2lanes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	overpass "github.com/serjvanilla/go-overpass"
)

// WayFetcher Resolves OSM way IDs to tag sets through an Overpass endpoint.
/*
	A convenience collaborator for tooling: the engine itself never performs
	I/O and treats the fetched tags as any other input.
*/
type WayFetcher struct {
	client overpass.Client
}

// NewWayFetcher Creates a fetcher against the given Overpass API endpoint.
// Empty endpoint uses the public main instance.
func NewWayFetcher(endpoint string, timeout time.Duration) *WayFetcher {
	if endpoint == "" {
		endpoint = "https://overpass-api.de/api/interpreter"
	}
	httpClient := &http.Client{
		Timeout: timeout,
	}
	client := overpass.NewWithSettings(endpoint, 1, httpClient)
	return &WayFetcher{client: client}
}

// FetchWayTags Loads the tag set of a single way
func (fetcher *WayFetcher) FetchWayTags(wayID int64) (*Tags, error) {
	query := fmt.Sprintf("[out:json];way(%d);out tags;", wayID)
	result, err := fetcher.client.Query(query)
	if err != nil {
		return nil, errors.Wrap(err, "Overpass query")
	}
	way, ok := result.Ways[wayID]
	if !ok || way == nil {
		return nil, errors.Errorf("way %d not found", wayID)
	}
	return NewTags(way.Tags), nil
}
