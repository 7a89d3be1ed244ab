package osm2lanes

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
)

// GeoPoint Representation of point on Earth
type GeoPoint struct {
	Lat float64
	Lon float64
}

// String Pretty printing for GeoPoint
func (gp GeoPoint) String() string {
	return fmt.Sprintf("Lon: %f | Lat: %f", gp.Lon, gp.Lat)
}

// WayLanes Lane inference result for one OSM way, with its geometry
type WayLanes struct {
	ID       osm.WayID
	Geom     []GeoPoint
	Road     *RoadLanes
	Warnings Warnings
}

// ImportFromOSMFile Runs lane inference over every road way of a PBF extract.
/*
	File should have PBF (Protocolbuffer Binary Format) extension according
	to https://github.com/paulmach/osm. Ways the engine rejects (not roads)
	are skipped; warnings are kept per way.
*/
func ImportFromOSMFile(fileName string, locale Locale, verbose bool, options ...func(*Engine)) ([]WayLanes, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	engine := NewEngine(options...)

	scannerWays := osmpbf.New(context.Background(), f, 4)
	defer scannerWays.Close()

	type pendingWay struct {
		id    osm.WayID
		nodes []osm.NodeID
		tags  *Tags
	}

	ways := []pendingWay{}
	nodesSeen := make(map[osm.NodeID]struct{})

	if verbose {
		fmt.Printf("Scanning ways...")
	}
	st := time.Now()
	for scannerWays.Scan() {
		obj := scannerWays.Object()
		if obj.ObjectID().Type() != "way" {
			continue
		}
		way := obj.(*osm.Way)
		if _, ok := way.TagMap()["highway"]; !ok {
			continue
		}
		pending := pendingWay{
			id:    way.ID,
			nodes: make([]osm.NodeID, len(way.Nodes)),
			tags:  TagsFromOSM(way.Tags),
		}
		for i := range way.Nodes {
			pending.nodes[i] = way.Nodes[i].ID
			nodesSeen[way.Nodes[i].ID] = struct{}{}
		}
		ways = append(ways, pending)
	}
	if scannerWays.Err() != nil {
		return nil, errors.Wrap(scannerWays.Err(), "Scanner error on Ways")
	}
	if verbose {
		fmt.Printf("Done in %v\n\tWays: %d\n", time.Since(st), len(ways))
	}

	// Seek file to start
	_, err = f.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking")
	}
	scannerNodes := osmpbf.New(context.Background(), f, 4)
	defer scannerNodes.Close()

	if verbose {
		fmt.Printf("Scanning nodes...")
	}
	st = time.Now()
	nodes := make(map[osm.NodeID]GeoPoint)
	for scannerNodes.Scan() {
		obj := scannerNodes.Object()
		if obj.ObjectID().Type() != "node" {
			continue
		}
		node := obj.(*osm.Node)
		if _, ok := nodesSeen[node.ID]; ok {
			nodes[node.ID] = GeoPoint{Lon: node.Lon, Lat: node.Lat}
		}
	}
	if scannerNodes.Err() != nil {
		return nil, errors.Wrap(scannerNodes.Err(), "Scanner error on Nodes")
	}
	if verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	if verbose {
		fmt.Printf("Inferring lanes...")
	}
	st = time.Now()
	results := []WayLanes{}
	skipped := 0
	for _, way := range ways {
		road, warnings, err := engine.TagsToLanes(way.tags, locale)
		if err != nil {
			skipped++
			if verbose {
				fmt.Printf("[WARNING]: Way ID: '%d' skipped: %s\n", way.id, err)
			}
			continue
		}
		geometry := make([]GeoPoint, 0, len(way.nodes))
		for _, nodeID := range way.nodes {
			if pt, ok := nodes[nodeID]; ok {
				geometry = append(geometry, pt)
			}
		}
		results = append(results, WayLanes{
			ID:       way.id,
			Geom:     geometry,
			Road:     road,
			Warnings: warnings,
		})
	}
	if verbose {
		fmt.Printf("Done in %v\n\tRoads: %d (skipped %d)\n", time.Since(st), len(results), skipped)
	}
	return results, nil
}
