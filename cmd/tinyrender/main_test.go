package main

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestParseVec(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    r3.Vec
		wantErr bool
	}{
		{"0,0,1", r3.Vec{Z: 1}, false},
		{" 1, -2.5 ,3", r3.Vec{X: 1, Y: -2.5, Z: 3}, false},
		{"1,2", r3.Vec{}, true},
		{"a,b,c", r3.Vec{}, true},
	} {
		got, err := parseVec(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("parseVec(%q) error %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseVec(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}
