package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger"
	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

// RenderKey identifies an encoded render. Two renders with equal keys
// produce identical images.
type RenderKey struct {
	Scene       string
	Width       int
	Height      int
	FieldOfView float64
	MaxDepth    int
	Format      string
}

func (k RenderKey) bytes() []byte {
	return []byte(fmt.Sprintf("render/%s/%dx%d/fov=%g/depth=%d.%s",
		k.Scene, k.Width, k.Height, k.FieldOfView, k.MaxDepth, k.Format))
}

// Cache stores encoded images in a badger database
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// Open opens (or creates) the cache in dir. Entries expire after ttl; a
// zero ttl keeps them forever.
func Open(dir string, ttl time.Duration) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(glogLogger{})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, xerrors.Errorf("while opening badger kv dir: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database
func (c *Cache) Close() error {
	if err := c.db.Close(); err != nil {
		return xerrors.Errorf("while closing render cache: %w", err)
	}
	return nil
}

// Get returns the cached image for key, reporting whether it was present
func (c *Cache) Get(key RenderKey) ([]byte, bool, error) {
	var data []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key.bytes())
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if xerrors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, xerrors.Errorf("while reading %s from render cache: %w", key.bytes(), err)
	}
	return data, true, nil
}

// Put stores data under key, replacing any earlier entry
func (c *Cache) Put(key RenderKey, data []byte) error {
	entry := badger.NewEntry(key.bytes(), data)
	if c.ttl > 0 {
		entry = entry.WithTTL(c.ttl)
	}

	for {
		err := c.db.Update(func(txn *badger.Txn) error {
			return txn.SetEntry(entry)
		})
		if xerrors.Is(err, badger.ErrConflict) {
			continue
		} else if err != nil {
			return xerrors.Errorf("while writing %s to render cache: %w", key.bytes(), err)
		}
		return nil
	}
}

// glogLogger routes badger's logging through glog, keeping its chatter
// behind verbosity levels
type glogLogger struct{}

func (glogLogger) Errorf(format string, args ...interface{}) {
	glog.Errorf("badger: "+format, args...)
}

func (glogLogger) Warningf(format string, args ...interface{}) {
	glog.Warningf("badger: "+format, args...)
}

func (glogLogger) Infof(format string, args ...interface{}) {
	glog.V(2).Infof("badger: "+format, args...)
}

func (glogLogger) Debugf(format string, args ...interface{}) {
	glog.V(3).Infof("badger: "+format, args...)
}
