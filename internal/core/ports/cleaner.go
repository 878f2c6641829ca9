package ports

// Cleaner removes staging directories after integration.
//
//go:generate go run go.uber.org/mock/mockgen -source=cleaner.go -destination=mocks/mock_cleaner.go -package=mocks
type Cleaner interface {
	// Remove deletes the directory tree, relaxing file permissions first so
	// read-only artifacts do not block removal. Callers treat a residual
	// failure as a warning, not an error.
	Remove(dir string) error
}
