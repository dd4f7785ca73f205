package cmd

// Config carries the process configuration loaded from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SuggestMaxDistanceKm bounds how far a zone centroid may be for the
	// zone to be suggested or auto-assigned.
	SuggestMaxDistanceKm float64
	// BoundaryBufferKm is the alert buffer around zone boundaries.
	BoundaryBufferKm float64
}
