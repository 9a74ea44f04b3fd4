package cmd

// Config carries all runtime settings resolved from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	// RoutingBaseURL points at the external route planning service.
	// When empty, distances fall back to straight-line geometry.
	RoutingBaseURL string

	// AssignReconcileSchedule is a six-field cron spec for the
	// courier assignment reconciliation sweep.
	AssignReconcileSchedule string

	RestaurantLatitude  float64
	RestaurantLongitude float64
}
