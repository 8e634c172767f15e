package domain

// A resolved place: the provider's display address and its coordinates.
type Place struct {
	Address     string
	Coordinates Coordinates
}
