package domain

import (
	"errors"
	"testing"
)

func TestCoordinatesValidate(t *testing.T) {
	tests := []struct {
		name  string
		c     Coordinates
		valid bool
	}{
		{name: "seoul", c: Coordinates{Lat: 37.55, Lon: 126.97}, valid: true},
		{name: "poles and antimeridian", c: Coordinates{Lat: -90, Lon: 180}, valid: true},
		{name: "lat too high", c: Coordinates{Lat: 90.01, Lon: 0}},
		{name: "lon too low", c: Coordinates{Lat: 0, Lon: -180.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidCoordinates) {
				t.Fatalf("err = %v, want ErrInvalidCoordinates", err)
			}
		})
	}
}
