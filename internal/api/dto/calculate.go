package dto

// Pointers distinguish a missing field from an explicit zero.
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
}

type CalculateRequest struct {
	Start *LocationRequest `json:"start" validate:"required"`
	End   *LocationRequest `json:"end" validate:"required"`
}

type CalculateResponse struct {
	DistanceKm float64 `json:"distance_km"`
}
