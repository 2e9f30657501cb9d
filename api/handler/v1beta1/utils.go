package v1beta1

import "strings"

// parseCommaSeparatedValues accepts both "a,b" and repeated query parameters
func parseCommaSeparatedValues(values []string) []string {
	var result []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}
