package server

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/matzehuels/gridgen/pkg/pipeline"
)

func TestApplyQueryReportsFirstBadParamInOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"unknown params", "zeta=1&alpha=2&mid=3", "alpha"},
		{"bad booleans", "refresh=maybe&no_grid=maybe&cell_ids=maybe", "cell_ids"},
		{"unknown before bad value", "padding=wide&colour=red", "colour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			// Map iteration order changes between runs; the reported
			// parameter must not.
			for range 50 {
				var opts pipeline.Options
				err := applyQuery(q, &opts)
				var pe *paramError
				if !errors.As(err, &pe) {
					t.Fatalf("applyQuery() error = %v, want *paramError", err)
				}
				if pe.FieldName() != tt.field {
					t.Fatalf("FieldName() = %q, want %q", pe.FieldName(), tt.field)
				}
			}
		})
	}
}

func TestApplyQueryFormatListsKnownFormats(t *testing.T) {
	var opts pipeline.Options
	err := applyQuery(url.Values{"format": {"gif"}}, &opts)
	if err == nil || !strings.Contains(err.Error(), "one of svg, png, pdf") {
		t.Errorf("applyQuery(format=gif) error = %v", err)
	}
}

func TestApplyQueryBareBoolean(t *testing.T) {
	var opts pipeline.Options
	if err := applyQuery(url.Values{"no_grid": {""}, "cell_ids": {"false"}}, &opts); err != nil {
		t.Fatalf("applyQuery() error = %v", err)
	}
	if !opts.NoGrid || opts.CellIDs {
		t.Errorf("NoGrid = %v, CellIDs = %v, want true, false", opts.NoGrid, opts.CellIDs)
	}
}
