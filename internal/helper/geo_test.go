package helper

import (
	"math"
	"testing"
)

func TestHaversineMetersKnownDistance(t *testing.T) {
	// Empire State Building to Central Park (roughly 3.3 km).
	got := HaversineMeters(-73.9857, 40.7484, -73.9665, 40.7812)
	if got < 3000 || got > 4500 {
		t.Fatalf("expected roughly 3.3km, got %.0fm", got)
	}
}

func TestHaversineMetersZero(t *testing.T) {
	if got := HaversineMeters(-73.98, 40.74, -73.98, 40.74); got != 0 {
		t.Fatalf("distance to self should be 0, got %f", got)
	}
}

func TestBoundingBoxEnclosesRadius(t *testing.T) {
	lon, lat, radius := -73.98, 40.74, 5000.0
	minLon, maxLon, minLat, maxLat := BoundingBox(lon, lat, radius)

	if minLon >= lon || maxLon <= lon || minLat >= lat || maxLat <= lat {
		t.Fatalf("box [%f,%f]x[%f,%f] does not contain center", minLon, maxLon, minLat, maxLat)
	}

	// Points on the axis-aligned edges must be at least radius away from
	// the center only along the diagonal; along the axes the edge should
	// sit at or past the radius.
	north := HaversineMeters(lon, lat, lon, maxLat)
	if north < radius*0.99 {
		t.Fatalf("north edge at %.0fm, want >= %.0fm", north, radius)
	}
	east := HaversineMeters(lon, lat, maxLon, lat)
	if east < radius*0.99 {
		t.Fatalf("east edge at %.0fm, want >= %.0fm", east, radius)
	}
}

func TestBoundingBoxClampsAtPoles(t *testing.T) {
	minLon, maxLon, minLat, maxLat := BoundingBox(0, 89.9999, 100000)
	if minLon != -180 || maxLon != 180 {
		t.Fatalf("polar box should span all longitudes, got [%f, %f]", minLon, maxLon)
	}
	if maxLat > 90 || minLat < -90 {
		t.Fatalf("latitude out of range: [%f, %f]", minLat, maxLat)
	}
}

func TestValidCoordinates(t *testing.T) {
	valid := [][2]float64{{0, 0}, {-180, -90}, {180, 90}, {-73.98, 40.74}}
	for _, c := range valid {
		if !ValidCoordinates(c[0], c[1]) {
			t.Fatalf("expected (%f, %f) to be valid", c[0], c[1])
		}
	}

	invalid := [][2]float64{{-180.1, 0}, {180.1, 0}, {0, -90.1}, {0, 90.1}, {math.Inf(1), 0}}
	for _, c := range invalid {
		if ValidCoordinates(c[0], c[1]) {
			t.Fatalf("expected (%f, %f) to be invalid", c[0], c[1])
		}
	}
}
