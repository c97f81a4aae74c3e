package ors

import (
	"encoding/binary"
	"time"

	"github.com/mitchellh/hashstructure/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/rotblauer/catwalk/params"
)

// routeCache replays directions-service responses for identical requests,
// keyed by a structural hash of the request params. Round trips are
// point-and-length deterministic enough for an on-disk cache to be worth
// more than a re-fetch against a rate-limited API.
type routeCache struct {
	db *bolt.DB
}

func openRouteCache(path string) (*routeCache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(params.RouteCacheBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &routeCache{db: db}, nil
}

func (c *routeCache) close() error { return c.db.Close() }

func cacheKey(p RoundTripParams) ([]byte, error) {
	hash, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	if err != nil {
		return nil, err
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, hash)
	return key, nil
}

func (c *routeCache) get(p RoundTripParams) (data []byte, ok bool) {
	key, err := cacheKey(p)
	if err != nil {
		return nil, false
	}
	_ = c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(params.RouteCacheBucket).Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
			ok = true
		}
		return nil
	})
	return data, ok
}

func (c *routeCache) put(p RoundTripParams, data []byte) error {
	key, err := cacheKey(p)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(params.RouteCacheBucket).Put(key, data)
	})
}
