package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark      = "v1.1.0"
	AA_Composition = "v1.0.0"
	Prot_Gen       = "v1.0.0"
)
