package pagination_test

import (
	"errors"
	"math"
	"testing"

	"recruitpro/internal/common/pagination"
)

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name      string
		params    pagination.Params
		wantError bool
	}{
		{name: "valid params", params: pagination.Params{Page: 1, Limit: 10}},
		{name: "limit at max", params: pagination.Params{Page: 1, Limit: 50}},
		{name: "limit at min", params: pagination.Params{Page: 7, Limit: 1}},
		{name: "zero page", params: pagination.Params{Page: 0, Limit: 10}, wantError: true},
		{name: "negative page", params: pagination.Params{Page: -1, Limit: 10}, wantError: true},
		{name: "zero limit", params: pagination.Params{Page: 1, Limit: 0}, wantError: true},
		{name: "limit over max", params: pagination.Params{Page: 1, Limit: 51}, wantError: true},
		{name: "page offset overflows", params: pagination.Params{Page: math.MaxInt, Limit: 12}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(config)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestParams_Validate_PageOutOfRange(t *testing.T) {
	t.Parallel()

	err := pagination.Params{Page: math.MaxInt, Limit: 10}.Validate(pagination.DefaultConfig())
	if !errors.Is(err, pagination.ErrPageOutOfRange) {
		t.Fatalf("Validate() error = %v, want ErrPageOutOfRange", err)
	}
	if err := (pagination.Params{Page: pagination.MaxPage(10), Limit: 10}).Validate(pagination.DefaultConfig()); err != nil {
		t.Errorf("Validate() at MaxPage error = %v, want nil", err)
	}
}

func TestParams_WithDefaults(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name   string
		params pagination.Params
		want   pagination.Params
	}{
		{name: "unchanged", params: pagination.Params{Page: 2, Limit: 12}, want: pagination.Params{Page: 2, Limit: 12}},
		{name: "zero page", params: pagination.Params{Page: 0, Limit: 12}, want: pagination.Params{Page: 1, Limit: 12}},
		{name: "negative limit", params: pagination.Params{Page: 1, Limit: -3}, want: pagination.Params{Page: 1, Limit: 10}},
		{name: "limit capped", params: pagination.Params{Page: 1, Limit: 500}, want: pagination.Params{Page: 1, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.WithDefaults(config); got != tt.want {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
