package render

import (
	"io"

	"github.com/beka-birhanu/rumba/grid"
	"github.com/beka-birhanu/rumba/simulation"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON collects the cleaner's path and writes the last frame as a
// FeatureCollection on Flush. Points use (x, y) = (col, row).
type GeoJSON struct {
	w    io.Writer
	path orb.LineString
	last *simulation.Snapshot
}

var _ Renderer = (*GeoJSON)(nil)

func NewGeoJSON(w io.Writer) *GeoJSON {
	return &GeoJSON{w: w}
}

func (g *GeoJSON) Push(s simulation.Snapshot) error {
	g.path = append(g.path, toPoint(s.Position))
	last := cloneSnapshot(s)
	g.last = &last
	return nil
}

// Flush writes the collection. Nothing is written when no snapshot arrived.
func (g *GeoJSON) Flush() error {
	if g.last == nil {
		return nil
	}

	rawJSON, err := g.FeatureCollection().MarshalJSON()
	if err != nil {
		return err
	}
	rawJSON = append(rawJSON, '\n')
	_, err = g.w.Write(rawJSON)
	return err
}

// FeatureCollection builds the features of the latest snapshot.
func (g *GeoJSON) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if g.last == nil {
		return fc
	}

	bounds := geojson.NewFeature(orb.Bound{
		Min: orb.Point{0, 0},
		Max: orb.Point{float64(g.last.Size.Cols - 1), float64(g.last.Size.Rows - 1)},
	}.ToPolygon())
	bounds.Properties["kind"] = "floor"
	bounds.Properties["step"] = g.last.Step
	fc.Append(bounds)

	agent := geojson.NewFeature(toPoint(g.last.Position))
	agent.Properties["kind"] = "cleaner"
	fc.Append(agent)

	if len(g.path) > 1 {
		path := geojson.NewFeature(g.path)
		path.Properties["kind"] = "path"
		fc.Append(path)
	}

	for _, p := range g.last.Dirt {
		f := geojson.NewFeature(toPoint(p))
		f.Properties["kind"] = "dirt"
		fc.Append(f)
	}

	for i, p := range g.last.Cleaned {
		f := geojson.NewFeature(toPoint(p))
		f.Properties["kind"] = "cleaned"
		f.Properties["order"] = i + 1
		fc.Append(f)
	}

	return fc
}

func toPoint(p grid.Position) orb.Point {
	return orb.Point{float64(p.Col), float64(p.Row)}
}
