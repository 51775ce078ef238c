package server

import "strconv"

// parseIDParam parses a route parameter as a positive integer ID. The whole
// string must be numeric; trailing garbage is rejected.
func parseIDParam(raw string) (uint, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}
