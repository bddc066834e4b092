package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetCacheTable() string {
	table := os.Getenv("CACHE_TABLE")
	if table != "" {
		return table
	}
	return "chordgrid-analyses"
}

// GetCacheEndpoint returns the DynamoDB endpoint override, empty for the
// real service.
func GetCacheEndpoint() string {
	return os.Getenv("CACHE_ENDPOINT")
}

// CacheEnabled reports whether the analysis cache should be used at all.
func CacheEnabled() bool {
	return os.Getenv("CACHE_DISABLED") == ""
}
