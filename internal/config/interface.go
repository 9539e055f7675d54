package config

import "context"

// Loader abstracts the concrete definition format away from the application.
// Implementations parse everything under path (a file or a directory) into
// a single merged Model.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
