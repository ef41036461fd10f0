package engine

// Config describes a round. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Columns int
	Rows    int
	// Ceiling is the number of hidden rows at the top where pieces spawn.
	Ceiling int

	// HorizontalSpeed is the held-key movement rate in cells per second.
	HorizontalSpeed float64
	// SoftDropSpeed is added to gravity while soft drop is held.
	SoftDropSpeed float64

	Settings   Settings
	StartLevel int
	Seed       uint64
}

// DefaultConfig returns a 10x20 visible board with four hidden rows.
func DefaultConfig() Config {
	return Config{
		Columns:         10,
		Rows:            24,
		Ceiling:         4,
		HorizontalSpeed: 3.0,
		SoftDropSpeed:   3.0,
		Settings:        SettingAllowHold,
	}
}
