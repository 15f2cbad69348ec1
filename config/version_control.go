package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark    = "v1.0.0"
	Mut_Analyzer = "v1.1.0"
	Codon_Table  = "v1.0.1"
	Sanity_check = "v1.0.0"
)
