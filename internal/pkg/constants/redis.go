package constants

// Redis key formats
const (
	// Geocoder cache
	KeyGeocodeHit      = "geocode:hit:%s"  // Format: geocode:hit:{normalized_address}, value "lon,lat"
	KeyGeocodeNegative = "geocode:miss:%s" // Format: geocode:miss:{normalized_address}

	// Provider catalog
	KeyProviderCandidates = "provider:candidates:%s" // Format: provider:candidates:{schema.table}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// NSQ topics and channels
const (
	TopicProviderCatalogChanged = "provider_catalog_changed"
	ChannelProviderService      = "provider-service"
)
