package extloader

import (
	"time"

	"github.com/flanksource/commons/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CacheEntry is one row of the cross-invocation metadata cache: a canonical
// path and the summary recorded the last time it was loaded, grounded on
// the teacher's FileMetadata cache-row shape (internal/cache, models.FileMetadata).
type CacheEntry struct {
	CanonicalPath string `gorm:"column:canonical_path;primaryKey"`
	AssemblyName  string `gorm:"column:assembly_name;not null"`
	TypeCount     int    `gorm:"column:type_count"`
	LoadedAt      int64  `gorm:"column:loaded_at;not null"`
}

// TableName pins the cache table name independent of the Go type name.
func (CacheEntry) TableName() string { return "external_assembly_cache" }

// Cache wraps a single-pool GORM/SQLite handle over the metadata cache
// table. The teacher's DualPoolGormDB splits read/write pools for
// high-concurrency violation storage; the metadata cache here is read-heavy
// and low-volume (one row per referenced assembly), so a single pool
// suffices and is recorded as a deliberate simplification in DESIGN.md.
type Cache struct {
	db *gorm.DB
}

// OpenCache opens (and migrates) the SQLite-backed cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&CacheEntry{}); err != nil {
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Lookup returns the cached entry for canonicalPath, if any.
func (c *Cache) Lookup(canonicalPath string) (CacheEntry, bool) {
	var e CacheEntry
	if err := c.db.First(&e, "canonical_path = ?", canonicalPath).Error; err != nil {
		return CacheEntry{}, false
	}
	return e, true
}

// Put records or refreshes the cache entry for an assembly that was just loaded.
func (c *Cache) Put(canonicalPath, assemblyName string, typeCount int) {
	e := CacheEntry{
		CanonicalPath: canonicalPath,
		AssemblyName:  assemblyName,
		TypeCount:     typeCount,
		LoadedAt:      nowUnix(),
	}
	if err := c.db.Save(&e).Error; err != nil {
		logger.Debugf("extloader: failed to cache %s: %v", canonicalPath, err)
	}
}

// nowUnix is isolated behind a var so tests can stamp deterministic times.
var nowUnix = func() int64 { return time.Now().Unix() }
