package utils

func ToStringSlice(slice []any) []string {
	stringSlice := make([]string, 0)
	for _, v := range slice {
		if s, ok := v.(string); ok {
			stringSlice = append(stringSlice, s)
		}
	}
	return stringSlice
}

// ClaimString extracts a string-valued claim from a decoded claim map
func ClaimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)
	return s
}

// ClaimBool extracts a bool-valued claim from a decoded claim map
func ClaimBool(claims map[string]any, key string) bool {
	b, _ := claims[key].(bool)
	return b
}

// ClaimMap extracts a nested object claim from a decoded claim map
func ClaimMap(claims map[string]any, key string) map[string]any {
	m, _ := claims[key].(map[string]any)
	return m
}

// ClaimUnix extracts a numeric claim as unix seconds. JSON numbers decode
// as float64, but provider payloads occasionally carry them as int64.
func ClaimUnix(claims map[string]any, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
