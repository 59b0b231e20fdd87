package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frudas24/deskrect/internal/geom"
)

// calc evaluates "op a b" where a is a rectangle written x,y,w,h and b is a
// rectangle or an x,y pair depending on op.
func calc(expr string) (string, error) {
	fields := strings.Fields(expr)
	if len(fields) != 3 {
		return "", fmt.Errorf("calc: want \"op a b\", got %q", expr)
	}
	op := strings.ToLower(fields[0])
	a, err := parseRect(fields[1])
	if err != nil {
		return "", err
	}

	switch op {
	case "union", "intersect", "intersects":
		b, err := parseRect(fields[2])
		if err != nil {
			return "", err
		}
		switch op {
		case "union":
			return a.Union(b).String(), nil
		case "intersect":
			return a.Intersection(b).String(), nil
		default:
			return strconv.FormatBool(a.Intersects(b)), nil
		}
	case "contains":
		if strings.Count(fields[2], ",") == 1 {
			x, y, err := parsePair(fields[2])
			if err != nil {
				return "", err
			}
			return strconv.FormatBool(a.Contains(x, y)), nil
		}
		b, err := parseRect(fields[2])
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(a.ContainsRect(b)), nil
	case "translate", "grow", "add":
		x, y, err := parsePair(fields[2])
		if err != nil {
			return "", err
		}
		switch op {
		case "translate":
			return a.Translated(x, y).String(), nil
		case "grow":
			return a.Grown(x, y).String(), nil
		default:
			return a.Including(x, y).String(), nil
		}
	default:
		return "", fmt.Errorf("calc: unknown op %q", op)
	}
}

// parseRect parses an "x,y,w,h" operand.
func parseRect(s string) (geom.Rectangle, error) {
	v, err := parseInts(s, 4)
	if err != nil {
		return geom.Rectangle{}, err
	}
	return geom.New(v[0], v[1], v[2], v[3]), nil
}

// parsePair parses an "x,y" operand.
func parsePair(s string) (int32, int32, error) {
	v, err := parseInts(s, 2)
	if err != nil {
		return 0, 0, err
	}
	return v[0], v[1], nil
}

// parseInts splits s on commas and parses exactly n int32 values.
func parseInts(s string, n int) ([]int32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("calc: %q needs %d comma-separated integers", s, n)
	}
	out := make([]int32, n)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("calc: %q: %w", p, err)
		}
		out[i] = int32(v)
	}
	return out, nil
}
