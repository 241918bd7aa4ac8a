package utils

import "testing"

func TestRoundCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   float64
	}{
		{10, 10},
		{7.5, 7.5},
		{0.105, 0.11},
		{33.333, 33.33},
		{99.999, 100},
		{0, 0},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.amount); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		limitStr   string
		offsetStr  string
		wantLimit  int
		wantOffset int
		wantErr    bool
	}{
		{name: "both empty", wantLimit: 0, wantOffset: 0},
		{name: "both set", limitStr: "10", offsetStr: "5", wantLimit: 10, wantOffset: 5},
		{name: "zero limit means unlimited", limitStr: "0", wantLimit: 0},
		{name: "negative limit", limitStr: "-1", wantErr: true},
		{name: "negative offset", offsetStr: "-5", wantErr: true},
		{name: "non-numeric limit", limitStr: "ten", wantErr: true},
		{name: "non-numeric offset", offsetStr: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset, err := ParseLimitOffset(tt.limitStr, tt.offsetStr)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLimitOffset(%q, %q) expected error, got nil", tt.limitStr, tt.offsetStr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLimitOffset(%q, %q) error = %v", tt.limitStr, tt.offsetStr, err)
			}
			if limit != tt.wantLimit || offset != tt.wantOffset {
				t.Errorf("ParseLimitOffset(%q, %q) = %d, %d, want %d, %d",
					tt.limitStr, tt.offsetStr, limit, offset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}
