package cmd

import (
	"testing"

	"github.com/kozaktomas/photo-printer/internal/layout"
)

func TestParseMargins(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    layout.MarginConfig
		wantErr bool
	}{
		{name: "none preset", input: "none", want: layout.MarginsNone},
		{name: "minimal preset", input: "minimal", want: layout.MarginsMinimal},
		{name: "instant preset", input: "instant", want: layout.MarginsInstantCamera},
		{name: "custom values", input: "8,25,8,8", want: layout.MarginConfig{Top: 8, Bottom: 25, Left: 8, Right: 8}},
		{name: "custom with spaces", input: "1, 2, 3, 4", want: layout.MarginConfig{Top: 1, Bottom: 2, Left: 3, Right: 4}},
		{name: "fractional values", input: "2.5,10.5,2.5,2.5", want: layout.MarginConfig{Top: 2.5, Bottom: 10.5, Left: 2.5, Right: 2.5}},
		{name: "unknown preset", input: "huge", wantErr: true},
		{name: "too few values", input: "1,2,3", wantErr: true},
		{name: "negative value", input: "1,-2,3,4", wantErr: true},
		{name: "not a number", input: "a,b,c,d", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseMargins(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("parseMargins(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}
