package utils

import "strconv"

// ParseSeed parses an optional random seed. An empty string returns nil.
func ParseSeed(seedStr string) (*int64, error) {
	if seedStr == "" {
		return nil, nil
	}

	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, err
	}

	return &seed, nil
}

// ParseLimit parses a positive page size, falling back to def and capping at max.
func ParseLimit(limitStr string, def, max int) int {
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
