package core

const (
	// SizeLimit1Mb is the max request body size for the match API.
	SizeLimit1Mb = 1024 * 1024

	CacheKeyPrefix = "starmatch:"
)
