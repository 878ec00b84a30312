package types

import "testing"

func TestCoords_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coords
		wantErr bool
	}{
		{"valid", NewCoords(28.6139, 77.2090), false},
		{"latitude boundary", NewCoords(90, 0), false},
		{"longitude boundary", NewCoords(0, -180), false},
		{"latitude too large", NewCoords(90.1, 0), true},
		{"latitude too small", NewCoords(-90.1, 0), true},
		{"longitude too large", NewCoords(0, 180.1), true},
		{"longitude too small", NewCoords(0, -180.1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coords.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoords_LngLat(t *testing.T) {
	got := NewCoords(28.6139, 77.2090).LngLat()
	if got != [2]float64{77.2090, 28.6139} {
		t.Errorf("LngLat() = %v, want longitude first", got)
	}
}
