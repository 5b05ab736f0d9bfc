package glidescore

import "math"

// point is a fix projected onto the flat, equirectangular plane used
// by DistanceMatrix: both components in radians, x = lat_rad,
// y = lon_rad * cos(mean_lat_rad). See spec.md §3/§4.1 — this is
// intentionally a flat-earth approximation centred on the window's
// mean latitude, valid only for windows spanning a few degrees of
// latitude (spec.md §9).
type point struct {
	x, y float64
}

// project converts a FixSet's lat/lon (decimal degrees) into the
// projected plane. It never mutates fs; the mean latitude is computed
// once from the whole window.
func project(fs FixSet) []point {
	n := fs.Len()
	if n <= 0 {
		return nil
	}

	meanLat := 0.0
	for _, lat := range fs.Lat {
		meanLat += lat
	}
	meanLat /= float64(n)
	cosMeanLat := math.Cos(Deg2rad(meanLat))

	pts := make([]point, n)
	for i := 0; i < n; i++ {
		pts[i] = point{
			x: Deg2rad(fs.Lat[i]),
			y: Deg2rad(fs.Lon[i]) * cosMeanLat,
		}
	}
	return pts
}
