package db

import "context"

// DB is the lifecycle shared by the mongo and postgres backends.
type DB interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
}
