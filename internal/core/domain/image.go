package domain

// ImageSize is the size tier for cover image generation.
type ImageSize string

// Available size tiers. The remote endpoint accepts exactly this set.
const (
	// ImageSize1K renders at 1K resolution.
	ImageSize1K ImageSize = "1K"

	// ImageSize2K renders at 2K resolution.
	ImageSize2K ImageSize = "2K"

	// ImageSize4K renders at 4K resolution.
	ImageSize4K ImageSize = "4K"
)

// CoverAspectRatio is the fixed portrait aspect ratio for cover images.
const CoverAspectRatio = "3:4"

// IsValid returns true if the size tier is recognised.
func (s ImageSize) IsValid() bool {
	switch s {
	case ImageSize1K, ImageSize2K, ImageSize4K:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s ImageSize) String() string {
	return string(s)
}

// Description returns a human-readable description of the tier.
func (s ImageSize) Description() string {
	switch s {
	case ImageSize1K:
		return "1K (fast, preview quality)"
	case ImageSize2K:
		return "2K (balanced)"
	case ImageSize4K:
		return "4K (slow, print quality)"
	default:
		return "Unknown"
	}
}

// AllImageSizes returns the size tiers in ascending order.
func AllImageSizes() []ImageSize {
	return []ImageSize{ImageSize1K, ImageSize2K, ImageSize4K}
}
