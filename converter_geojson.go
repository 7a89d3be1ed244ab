package osm2lanes

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
)

// PrepareGeoJSONLinestring returns GeoJSON representation of LineString
func PrepareGeoJSONLinestring(pts []GeoPoint) string {
	pts2d := make([][]float64, len(pts))
	for i := range pts {
		pts2d[i] = []float64{pts[i].Lon, pts[i].Lat}
	}
	b, err := geojson.NewLineStringGeometry(pts2d).MarshalJSON()
	if err != nil {
		fmt.Printf("Warning. Can not convert geometry to geojson format: %s", err.Error())
		return ""
	}
	return string(b)
}

// PrepareGeoJSONFeatures Converts inferred lanes to a GeoJSON feature
// collection, one feature per way, lane summary in the properties
func PrepareGeoJSONFeatures(ways []WayLanes) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, way := range ways {
		pts2d := make([][]float64, len(way.Geom))
		for i := range way.Geom {
			pts2d[i] = []float64{way.Geom[i].Lon, way.Geom[i].Lat}
		}
		feature := geojson.NewLineStringFeature(pts2d)
		feature.SetProperty("osm_way_id", int64(way.ID))
		feature.SetProperty("lanes", len(way.Road.Lanes))
		feature.SetProperty("travel_lanes", way.Road.TravelLanes())
		feature.SetProperty("oneway", way.Road.Oneway)
		feature.SetProperty("highway", way.Road.Highway.String())
		feature.SetProperty("diagram", way.Road.String())
		feature.SetProperty("width", float64(way.Road.TotalWidth()))
		feature.SetProperty("warnings", len(way.Warnings))
		fc.AddFeature(feature)
	}
	return fc
}
