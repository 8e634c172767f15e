package dto

type GeocodeResponse struct {
	Found   bool     `json:"found"`
	Address string   `json:"address,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	Message string   `json:"message,omitempty"`
}
