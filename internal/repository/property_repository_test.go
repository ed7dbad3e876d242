package repository

import (
	"reflect"
	"testing"
)

func uptr(v uint64) *uint64 { return &v }

func TestSearchConds(t *testing.T) {
	cases := []struct {
		name     string
		q        SearchQuery
		wantCond string
		wantArgs []any
	}{
		{"no filters", SearchQuery{}, "1=1", []any{}},
		{"city only", SearchQuery{CityID: uptr(1)}, "p.city_id = ?", []any{uint64(1)}},
		{"country only", SearchQuery{CountryID: uptr(2)}, "c.country_id = ?", []any{uint64(2)}},
		{
			"city and country combine with AND",
			SearchQuery{CityID: uptr(1), CountryID: uptr(2)},
			"p.city_id = ? AND c.country_id = ?",
			[]any{uint64(1), uint64(2)},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cond, args := searchConds(tc.q)
			if cond != tc.wantCond {
				t.Errorf("cond = %q, want %q", cond, tc.wantCond)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("args = %v, want %v", args, tc.wantArgs)
			}
		})
	}
}
