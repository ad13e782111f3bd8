package comb

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParseExpr converts a combination expression such as
// "1.00*G1 + 1.00*G2 + 1.35*Qwind" into an action-name to factor mapping.
// The empty string yields an empty map.
func ParseExpr(expr string) (map[string]float64, error) {
	result := make(map[string]float64)
	if strings.TrimSpace(expr) == "" {
		return result, nil
	}
	for _, addend := range strings.Split(expr, "+") {
		addend = strings.TrimSpace(addend)
		factorStr, name, ok := strings.Cut(addend, "*")
		if !ok {
			return nil, fmt.Errorf("malformed combination term %q", addend)
		}
		factor, err := strconv.ParseFloat(strings.TrimSpace(factorStr), 64)
		if err != nil {
			return nil, fmt.Errorf("malformed factor in term %q: %w", addend, err)
		}
		result[strings.TrimSpace(name)] = factor
	}
	return result, nil
}

// FormatDict renders a factor mapping as a combination expression. Keys are
// sorted so the output is deterministic; ParseExpr(FormatDict(d)) == d.
func FormatDict(d map[string]float64) string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = strconv.FormatFloat(d[name], 'g', -1, 64) + "*" + name
	}
	return strings.Join(parts, "+")
}

// SplitExpr separates the terms of a combination expression that concern
// the given action names from the rest, keeping the original term order.
func SplitExpr(expr string, names []string) (matched, rest string, err error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var in, out []string
	if strings.TrimSpace(expr) != "" {
		for _, addend := range strings.Split(expr, "+") {
			addend = strings.TrimSpace(addend)
			_, name, ok := strings.Cut(addend, "*")
			if !ok {
				return "", "", fmt.Errorf("malformed combination term %q", addend)
			}
			if wanted[strings.TrimSpace(name)] {
				in = append(in, addend)
			} else {
				out = append(out, addend)
			}
		}
	}
	return strings.Join(in, "+"), strings.Join(out, "+"), nil
}

// FileName derives a filesystem-safe name from a combination expression by
// keeping only letters and digits.
func FileName(expr string) string {
	var sb strings.Builder
	for _, r := range expr {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
