package airquality

import (
	"net/http"
	"strconv"
)

type location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// parseLocation reads lat/lon query params. Returns a message on invalid input.
func parseLocation(r *http.Request) (location, string) {
	q := r.URL.Query()
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return location{}, "lat param required (-90 to 90)"
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return location{}, "lon param required (-180 to 180)"
	}
	return location{Lat: lat, Lon: lon}, ""
}
