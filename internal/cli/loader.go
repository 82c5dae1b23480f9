package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/wyvern/query"
)

// criteriaFile is the YAML shape of a criteria description.
type criteriaFile struct {
	Table      string          `yaml:"table"`
	Conditions []conditionFile `yaml:"conditions"`
	Sort       []sortFile      `yaml:"sort"`
	Limit      *int64          `yaml:"limit"`
	Offset     *int64          `yaml:"offset"`
}

type conditionFile struct {
	Field string `yaml:"field"`
	Op    string `yaml:"op"`
	Value any    `yaml:"value"`
}

type sortFile struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc"`
}

// LoadCriteria reads a YAML criteria description and converts it to a table
// name and filter criteria.
//
// The loader validates what the core model deliberately does not: operator
// names must be known, condition fields non-empty, and values convertible.
func LoadCriteria(path string) (string, query.FilterCriteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", query.FilterCriteria{}, fmt.Errorf("read criteria file: %w", err)
	}

	var file criteriaFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", query.FilterCriteria{}, fmt.Errorf("parse criteria file: %w", err)
	}
	if file.Table == "" {
		return "", query.FilterCriteria{}, fmt.Errorf("criteria file: table is required")
	}

	criteria := query.NewCriteria()
	for i, c := range file.Conditions {
		if c.Field == "" {
			return "", query.FilterCriteria{}, fmt.Errorf("condition %d: field is required", i)
		}
		op, err := parseOperator(c.Op)
		if err != nil {
			return "", query.FilterCriteria{}, fmt.Errorf("condition %d: %w", i, err)
		}
		value, err := query.ValueOf(c.Value)
		if err != nil {
			return "", query.FilterCriteria{}, fmt.Errorf("condition %d: %w", i, err)
		}
		criteria = criteria.WithCondition(query.NewCondition(c.Field, op, value))
	}

	for i, s := range file.Sort {
		if s.Field == "" {
			return "", query.FilterCriteria{}, fmt.Errorf("sort %d: field is required", i)
		}
		if s.Desc {
			criteria = criteria.WithSort(query.Desc(s.Field))
		} else {
			criteria = criteria.WithSort(query.Asc(s.Field))
		}
	}

	if file.Limit != nil {
		criteria = criteria.WithLimit(*file.Limit)
	}
	if file.Offset != nil {
		criteria = criteria.WithOffset(*file.Offset)
	}

	return file.Table, criteria, nil
}

// parseOperator maps a YAML operator name to a query.Operator.
func parseOperator(name string) (query.Operator, error) {
	switch name {
	case "eq":
		return query.Equal, nil
	case "ne":
		return query.NotEqual, nil
	case "gt":
		return query.GreaterThan, nil
	case "gte":
		return query.GreaterThanOrEqual, nil
	case "lt":
		return query.LessThan, nil
	case "lte":
		return query.LessThanOrEqual, nil
	case "like":
		return query.Like, nil
	case "in":
		return query.In, nil
	case "isnull":
		return query.IsNull, nil
	case "isnotnull":
		return query.IsNotNull, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", name)
	}
}
