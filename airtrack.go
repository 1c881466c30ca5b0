// This package contains all the types for the live telemetry pipeline. No UI imports.
package airtrack

const(
	// MaxLiveAircraft bounds how many aircraft one normalization pass will
	// emit. The map gets unusable long before this, so don't raise it just
	// because the feed got busier.
	MaxLiveAircraft = 50
)
