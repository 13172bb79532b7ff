package frame

// Routes relative to the frames base path.
const (
	LandingRoute    = ""
	ReviewRoute     = "/propose"
	SimulationRoute = "/propose/simulate"
)
