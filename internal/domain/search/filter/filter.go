// Package filter models a store-agnostic conjunctive predicate over
// restaurant records. The db layer compiles it into a search query.
package filter

import (
	"fmt"

	"github.com/localeats/localeats/internal/domain/search/intent"
)

// MaxConditions is the maximum number of conditions in an expression.
const MaxConditions = 32

// Field names the predicate can reference (index aliases in the store).
const (
	FieldName       = "name"
	FieldCity       = "city"
	FieldCuisine    = "cuisine"
	FieldDishes     = "dishes"
	FieldTags       = "tags"
	FieldPriceLevel = "price_level"
	FieldTakeaway   = "takeaway"
)

// Expression is a conjunction of conditions. An empty expression is the
// universal predicate: it matches every record.
type Expression struct {
	conditions []Condition
}

// NewExpression validates and creates an Expression.
func NewExpression(conditions []Condition) (Expression, error) {
	if len(conditions) > MaxConditions {
		return Expression{}, fmt.Errorf("too many conditions (max %d)", MaxConditions)
	}
	return Expression{conditions: conditions}, nil
}

// Conditions returns the conjunction members.
func (e Expression) Conditions() []Condition { return e.conditions }

// IsEmpty reports whether the expression is the universal predicate.
func (e Expression) IsEmpty() bool { return len(e.conditions) == 0 }

// Condition is a single clause: a tag membership (any of the values matches,
// whole-string, case-insensitive) or a numeric range.
type Condition struct {
	key       string
	matches   []string
	rangeExpr *Range
}

// NewMatchAny creates a membership condition: the field must equal any of the
// given values.
func NewMatchAny(key string, values ...string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if len(values) == 0 {
		return Condition{}, fmt.Errorf("at least one match value is required for key %q", key)
	}
	for _, v := range values {
		if v == "" {
			return Condition{}, fmt.Errorf("empty match value for key %q", key)
		}
	}
	return Condition{key: key, matches: values}, nil
}

// NewRange creates a numeric range condition.
func NewRange(key string, r Range) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	return Condition{key: key, rangeExpr: &r}, nil
}

// Key returns the field name.
func (c Condition) Key() string { return c.key }

// Matches returns the membership values.
func (c Condition) Matches() []string { return c.matches }

// Range returns the numeric range expression.
func (c Condition) Range() *Range { return c.rangeExpr }

// IsMatch reports whether this is a membership condition.
func (c Condition) IsMatch() bool { return len(c.matches) > 0 }

// IsRange reports whether this is a range condition.
func (c Condition) IsRange() bool { return c.rangeExpr != nil }

// Range is a numeric range with inclusive min/max boundaries.
type Range struct {
	min *float64
	max *float64
}

// NewRangeFilter validates and creates a Range. At least one boundary is
// required.
func NewRangeFilter(minBound, maxBound *float64) (Range, error) {
	if minBound == nil && maxBound == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	return Range{min: minBound, max: maxBound}, nil
}

// Min returns the inclusive lower bound.
func (r Range) Min() *float64 { return r.min }

// Max returns the inclusive upper bound.
func (r Range) Max() *float64 { return r.max }

// FromIntent builds the conjunctive predicate for a filter intent.
//
// City becomes an exact membership match (the store matches tags whole-string
// and case-insensitively); cuisine/dishes/tags each become a set-intersection
// clause; max price becomes an inclusive upper range bound; takeaway becomes
// an equality match. Absent constraints contribute nothing: an all-empty
// intent yields the universal predicate.
func FromIntent(it intent.Intent) (Expression, error) {
	var conditions []Condition

	if city := it.City(); city != "" {
		c, err := NewMatchAny(FieldCity, city)
		if err != nil {
			return Expression{}, err
		}
		conditions = append(conditions, c)
	}

	facets := []struct {
		key    string
		values []string
	}{
		{FieldCuisine, it.Cuisines()},
		{FieldDishes, it.Dishes()},
		{FieldTags, it.Tags()},
	}
	for _, f := range facets {
		if len(f.values) == 0 {
			continue
		}
		c, err := NewMatchAny(f.key, f.values...)
		if err != nil {
			return Expression{}, err
		}
		conditions = append(conditions, c)
	}

	if maxPrice := it.MaxPrice(); maxPrice != nil {
		upper := float64(*maxPrice)
		r, err := NewRangeFilter(nil, &upper)
		if err != nil {
			return Expression{}, err
		}
		c, err := NewRange(FieldPriceLevel, r)
		if err != nil {
			return Expression{}, err
		}
		conditions = append(conditions, c)
	}

	if takeaway := it.Takeaway(); takeaway != nil {
		value := "false"
		if *takeaway {
			value = "true"
		}
		c, err := NewMatchAny(FieldTakeaway, value)
		if err != nil {
			return Expression{}, err
		}
		conditions = append(conditions, c)
	}

	return NewExpression(conditions)
}
