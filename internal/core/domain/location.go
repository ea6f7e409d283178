package domain

// UnknownPlaceName is the display name used when a grounding citation
// carries no title.
const UnknownPlaceName = "Unknown Place"

// LocationInfo is the enrichment of one place name from a grounding
// citation. All fields except Name are best-effort: the Address in
// particular is sourced from a citation source identifier and may not
// be a human-readable street address.
type LocationInfo struct {
	// Name is the display name of the place.
	Name string

	// URI is a navigable link to the place, if the citation carried one.
	URI string

	// Address is an address-like field from the citation source.
	Address string

	// Rating is the place rating, zero when unavailable.
	Rating float64
}
