package loopback

// Media types used by loopback responses
const (
	MediaTypeCollection = "application/vnd.lime.collection+json"
	MediaTypeText       = "text/plain"
)

// Query parameters understood on collection uris
const (
	QuerySkip = "$skip"
	QueryTake = "$take"

	defaultTake = 100
)

// identityField keys documents posted to a collection
const identityField = "identity"
