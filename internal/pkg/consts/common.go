package consts

import "time"

// SearchCacheTTL bounds the staleness of cached search result pages.
const SearchCacheTTL = 5 * time.Minute

const (
	KindUser    = "user"
	KindPartner = "partner"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultSearchRadiusKm applies when a geo center is given without a radius.
const DefaultSearchRadiusKm = 10.0
