package styles

import (
	"fmt"
	"maps"
	"math"
	"slices"

	gerrors "github.com/matzehuels/gridgen/pkg/errors"
	"github.com/matzehuels/gridgen/pkg/grid"
)

// Field names reported by IncompleteOverrideError, in check order.
const (
	FieldFill        = "fillColor"
	FieldStroke      = "strokeColor"
	FieldStrokeWidth = "strokeWidth"
)

// IncompleteOverrideError reports an override that leaves a field unset.
type IncompleteOverrideError struct {
	Tag          Tag
	MissingField string
}

func (e *IncompleteOverrideError) Error() string {
	return fmt.Sprintf("style override for %q is missing %s", e.Tag, e.MissingField)
}

// Code returns the error code for this error type.
func (e *IncompleteOverrideError) Code() gerrors.Code {
	return gerrors.ErrCodeIncompleteStyleOverride
}

// FieldName returns the missing field.
func (e *IncompleteOverrideError) FieldName() string { return e.MissingField }

// Resolver maps style tags to complete specs. It is built once from the
// overrides, which are validated up front, and is read-only afterwards.
type Resolver struct {
	specs map[Tag]Spec
}

// NewResolver validates overrides and layers them over the defaults.
// Tags are checked in sorted order so the reported error is stable.
func NewResolver(overrides map[Tag]Override) (*Resolver, error) {
	specs := maps.Clone(defaults)
	for _, tag := range slices.Sorted(maps.Keys(overrides)) {
		spec, err := validateOverride(tag, overrides[tag])
		if err != nil {
			return nil, err
		}
		specs[tag] = spec
	}
	return &Resolver{specs: specs}, nil
}

// Resolve returns the override's record for tag if one was supplied, else
// the built-in default.
func Resolve(tag Tag, overrides map[Tag]Override) (Spec, error) {
	if _, ok := defaults[tag]; !ok {
		return Spec{}, gerrors.New(gerrors.ErrCodeInvalidStyle, "unknown style tag %q", tag)
	}
	if o, ok := overrides[tag]; ok {
		return validateOverride(tag, o)
	}
	return defaults[tag], nil
}

// Resolve returns the spec for tag.
func (r *Resolver) Resolve(tag Tag) (Spec, error) {
	s, ok := r.specs[tag]
	if !ok {
		return Spec{}, gerrors.New(gerrors.ErrCodeInvalidStyle, "unknown style tag %q", tag)
	}
	return s, nil
}

// For returns the spec used to draw shapes of kind k. Empty cells have none.
func (r *Resolver) For(k grid.Kind) (Spec, bool) {
	tag, ok := TagFor(k)
	if !ok {
		return Spec{}, false
	}
	s, ok := r.specs[tag]
	return s, ok
}

// Specs returns a copy of every resolved spec.
func (r *Resolver) Specs() map[Tag]Spec { return maps.Clone(r.specs) }

func validateOverride(tag Tag, o Override) (Spec, error) {
	if _, ok := defaults[tag]; !ok {
		return Spec{}, gerrors.New(gerrors.ErrCodeInvalidStyle, "unknown style tag %q", tag)
	}
	switch {
	case o.Fill == nil:
		return Spec{}, &IncompleteOverrideError{Tag: tag, MissingField: FieldFill}
	case o.Stroke == nil:
		return Spec{}, &IncompleteOverrideError{Tag: tag, MissingField: FieldStroke}
	case o.StrokeWidth == nil:
		return Spec{}, &IncompleteOverrideError{Tag: tag, MissingField: FieldStrokeWidth}
	}

	spec := Spec{Fill: *o.Fill, Stroke: *o.Stroke, StrokeWidth: *o.StrokeWidth}
	if err := ValidateColor(spec.Fill); err != nil {
		return Spec{}, gerrors.Wrap(gerrors.ErrCodeInvalidStyle, err, "%s: %s", tag, FieldFill)
	}
	if err := ValidateColor(spec.Stroke); err != nil {
		return Spec{}, gerrors.Wrap(gerrors.ErrCodeInvalidStyle, err, "%s: %s", tag, FieldStroke)
	}
	if w := spec.StrokeWidth; w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return Spec{}, gerrors.New(gerrors.ErrCodeInvalidStyle, "%s: %s must be a finite non-negative number, got %v", tag, FieldStrokeWidth, w)
	}
	return spec, nil
}
