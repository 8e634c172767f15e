package form

import (
	"place-distance-service/internal/domain"
	"strconv"
)

const mapURLPrefix = "https://www.openstreetmap.org/directions?engine=graphhopper_car&route="

// MapURL builds the OpenStreetMap directions deep link from start to end.
// The "," and ";" separators are sent percent-encoded.
func MapURL(start, end domain.Coordinates) string {
	return mapURLPrefix +
		formatDegrees(start.Lat) + "%2C" + formatDegrees(start.Lon) +
		"%3B" +
		formatDegrees(end.Lat) + "%2C" + formatDegrees(end.Lon)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
