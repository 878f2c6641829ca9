package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestMissing is returned when an operation requires a manifest and
	// none exists in the project root.
	ErrManifestMissing = zerr.New("no grip.json found, run 'grip init' first")

	// ErrManifestInvalid is returned when the manifest exists but cannot be decoded.
	ErrManifestInvalid = zerr.New("manifest is not valid")

	// ErrWorkspaceIO is returned when the modules directories cannot be created.
	ErrWorkspaceIO = zerr.New("workspace setup failed")

	// ErrFetchFailed is returned when a dependency's source cannot be retrieved.
	ErrFetchFailed = zerr.New("fetch failed")

	// ErrIntegrationFailed is returned when copying headers or libraries into
	// the consumer tree fails mid-walk.
	ErrIntegrationFailed = zerr.New("integration failed")

	// ErrLibTreeTooDeep is returned when the single-child descent below lib/
	// exceeds MaxLibDescent levels.
	ErrLibTreeTooDeep = zerr.New("library tree nested too deeply")

	// ErrDescriptorMissing is returned when the build description file is absent.
	ErrDescriptorMissing = zerr.New("build description not found")

	// ErrExternalTool is returned when the external build tool exits non-zero.
	ErrExternalTool = zerr.New("external tool failed")

	// ErrRunTargetMissing is returned when run finds no built executable.
	ErrRunTargetMissing = zerr.New("run target not built, run 'grip build' first")
)
