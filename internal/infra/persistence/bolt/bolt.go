// Package bolt contains the document-store implementation of the
// persistence layer. Items are stored as JSON documents in bbolt buckets,
// with the wire-side nested price shape kept intact.
package bolt

import (
	"context"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"
	"go.uber.org/fx"

	"bakehouse/config"
	"bakehouse/internal/errors"
)

// Bucket names, one per record namespace.
var (
	productsBucket   = []byte("products")
	fastFoodBucket   = []byte("fastfood")
	siteConfigBucket = []byte("site_config")
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bbolt database, creates the catalog buckets and wires the
// handle into the application lifecycle.
func New(params Params) (*bbolt.DB, error) {
	db, err := bbolt.Open(params.Config.Database.Path, 0o600, &bbolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bolt database")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{productsBucket, fastFoodBucket, siteConfigBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return errors.Wrapf(err, "failed to create bucket %s", bucket)
			}
		}

		return nil
	})
	if err != nil {
		closeErr := db.Close()

		return nil, errors.Join(err, closeErr)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}
