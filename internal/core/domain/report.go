package domain

// InstallReport summarizes one install invocation for presentation.
type InstallReport struct {
	Dependency       string
	ResolvedVersion  string
	AlreadyInstalled bool
	HeaderCount      int
	Libraries        []string
	// CleanupWarning is set when staging removal failed after the manifest was
	// already saved. The install still counts as a success.
	CleanupWarning error
}
