package utils

import (
	"math"
	"testing"
)

func TestCheckMultiplyOverflow(t *testing.T) {
	tests := []struct {
		name    string
		a       uint64
		b       uint64
		wantErr bool
	}{
		{name: "no overflow - small numbers", a: 10, b: 20, wantErr: false},
		{name: "no overflow - one zero", a: 0, b: math.MaxUint64, wantErr: false},
		{name: "no overflow - both zero", a: 0, b: 0, wantErr: false},
		{name: "overflow - max * 2", a: math.MaxUint64, b: 2, wantErr: true},
		{name: "overflow - large numbers", a: math.MaxUint64 / 2, b: 3, wantErr: true},
		{name: "no overflow - exact max", a: math.MaxUint64, b: 1, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMultiplyOverflow(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckMultiplyOverflow(%d, %d) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
		})
	}
}

func TestCheckAddOverflow(t *testing.T) {
	tests := []struct {
		name    string
		a       uint64
		b       uint64
		wantErr bool
	}{
		{name: "no overflow", a: 10, b: 20, wantErr: false},
		{name: "exact max", a: math.MaxUint64, b: 0, wantErr: false},
		{name: "overflow", a: math.MaxUint64, b: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAddOverflow(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckAddOverflow(%d, %d) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
		})
	}
}

func TestSafeMultiply(t *testing.T) {
	tests := []struct {
		name    string
		a       uint64
		b       uint64
		want    uint64
		wantErr bool
	}{
		{name: "normal multiplication", a: 10, b: 20, want: 200, wantErr: false},
		{name: "zero multiplication", a: 0, b: 100, want: 0, wantErr: false},
		{name: "overflow", a: math.MaxUint64, b: 2, want: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeMultiply(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("SafeMultiply(%d, %d) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("SafeMultiply(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestValidateBufferSize(t *testing.T) {
	tests := []struct {
		name        string
		size        uint64
		maxSize     uint64
		description string
		wantErr     bool
	}{
		{name: "valid size", size: 1000, maxSize: 10000, description: "test buffer", wantErr: false},
		{name: "exact max", size: 10000, maxSize: 10000, description: "test buffer", wantErr: false},
		{name: "zero size", size: 0, maxSize: 10000, description: "test buffer", wantErr: false},
		{name: "exceeds max", size: 10001, maxSize: 10000, description: "test buffer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBufferSize(tt.size, tt.maxSize, tt.description)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateBufferSize(%d, %d, %q) error = %v, wantErr %v", tt.size, tt.maxSize, tt.description, err, tt.wantErr)
			}
		})
	}
}

func TestContainsRange(t *testing.T) {
	tests := []struct {
		name   string
		offset uint64
		size   uint64
		bound  uint64
		want   bool
	}{
		{name: "fits exactly", offset: 0, size: 10, bound: 10, want: true},
		{name: "fits with room", offset: 2, size: 4, bound: 10, want: true},
		{name: "exceeds bound", offset: 8, size: 4, bound: 10, want: false},
		{name: "overflowing addition", offset: math.MaxUint64, size: 2, bound: 10, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContainsRange(tt.offset, tt.size, tt.bound)
			if got != tt.want {
				t.Errorf("ContainsRange(%d, %d, %d) = %v, want %v", tt.offset, tt.size, tt.bound, got, tt.want)
			}
		})
	}
}

func TestRoundUp(t *testing.T) {
	tests := []struct {
		name        string
		size        uint64
		granularity uint64
		want        uint64
	}{
		{name: "already aligned", size: 64, granularity: 64, want: 64},
		{name: "rounds up", size: 65, granularity: 64, want: 128},
		{name: "zero size rounds to one granularity", size: 0, granularity: 64, want: 64},
		{name: "zero granularity is a no-op", size: 100, granularity: 0, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundUp(tt.size, tt.granularity)
			if got != tt.want {
				t.Errorf("RoundUp(%d, %d) = %d, want %d", tt.size, tt.granularity, got, tt.want)
			}
		})
	}
}
