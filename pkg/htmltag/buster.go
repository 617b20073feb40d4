package htmltag

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/unstdkit/unstd/pkg/lru"
	"github.com/unstdkit/unstd/pkg/memoize"
)

// BustMethod selects how a cache-busting value is derived from an asset.
type BustMethod string

const (
	// BustImportTime uses the process start time; it changes on every
	// deploy and requires no file access.
	BustImportTime BustMethod = "importtime"
	// BustMTime uses the file's modification time.
	BustMTime BustMethod = "mtime"
	// BustMD5 uses the MD5 digest of the file contents.
	BustMD5 BustMethod = "md5"
)

// busterCacheSize bounds the per-Buster memo of mtime/md5 results. Asset
// sets are small; the bound only matters for pathological path churn.
const busterCacheSize = 512

// Buster derives cache-busting values for static assets. The mtime and md5
// methods hit the filesystem, so their results are memoized per path in a
// bounded recently-used cache owned by the Buster; create a new Buster to
// drop stale results.
type Buster struct {
	importTime string
	mtime      func(string) (string, error)
	md5sum     func(string) (string, error)
}

// NewBuster creates a Buster whose importtime value is fixed at the moment
// of the call.
func NewBuster() *Buster {
	pathKey := func(p string) string { return p }

	mtimeCache, _ := lru.New[string, string](busterCacheSize)
	md5Cache, _ := lru.New[string, string](busterCacheSize)

	return &Buster{
		importTime: strconv.FormatInt(time.Now().Unix(), 10),
		mtime:      memoize.Err1(mtimeOf, pathKey, mtimeCache),
		md5sum:     memoize.Err1(md5Of, pathKey, md5Cache),
	}
}

// Bust returns the cache-busting value for the asset at srcPath. srcPath is
// ignored by BustImportTime. Returns ErrUnknownBustMethod for any other
// method value; file errors from mtime/md5 propagate unmemoized.
func (b *Buster) Bust(srcPath string, method BustMethod) (string, error) {
	switch method {
	case BustImportTime:
		return b.importTime, nil
	case BustMTime:
		return b.mtime(srcPath)
	case BustMD5:
		return b.md5sum(srcPath)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBustMethod, method)
	}
}

// defaultBuster backs the package-level CacheBuster; its importtime is the
// process start.
var defaultBuster = NewBuster()

// CacheBuster derives a cache-busting value using a process-wide Buster.
func CacheBuster(srcPath string, method BustMethod) (string, error) {
	return defaultBuster.Bust(srcPath, method)
}

func mtimeOf(srcPath string) (string, error) {
	info, err := os.Stat(srcPath)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(info.ModTime().Unix(), 10), nil
}

func md5Of(srcPath string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	hash := md5.New()
	if _, err := io.Copy(hash, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
