package domain

// SentinelMomentID marks a single synthetic Moment that carries an entire
// raw-text submission through the pipeline as one unit. The analysis
// adapter treats its content as the verbatim prompt body.
const SentinelMomentID = "raw-memory-stream"

// SentinelMomentDate is the placeholder date on the sentinel Moment.
// It carries no semantic meaning on the raw-text path.
const SentinelMomentDate = "2024-01-01"

// Moment is one unit of raw journal input: an identifier, a date string,
// free text content, and optional location/image-count metadata.
type Moment struct {
	// ID identifies the moment. The sentinel ID marks a raw-text dump.
	ID string

	// Date is the moment's date string (placeholder on the sentinel path).
	Date string

	// Content is the free-form text of the moment.
	Content string

	// Location is an optional place name.
	Location string

	// ImageCount is the optional number of attached images.
	ImageCount int
}

// NewRawMoment wraps an entire raw-text submission into the single
// sentinel Moment used by the import stage.
func NewRawMoment(text string) Moment {
	return Moment{
		ID:      SentinelMomentID,
		Date:    SentinelMomentDate,
		Content: text,
	}
}

// IsSentinel reports whether this moment is the raw-text sentinel.
func (m Moment) IsSentinel() bool {
	return m.ID == SentinelMomentID
}
