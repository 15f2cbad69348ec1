package sanity_check

import (
	"fmt"

	version_control "gene_lab_go/config" // Version control file
)

// Run performs a simple sanity check to ensure Gene Lab is
// running properly printing helpful message and version number.
func Run(args []string) {
	fmt.Printf("Successfully running Gene Lab! (%s)\n", version_control.Main_version)
}
