package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"
	"go.uber.org/zap"

	"github.com/Faultbox/tankterrain/internal/logger"
)

// ErrNotFound is returned when a local source does not exist.
var ErrNotFound = errors.New("asset not found")

// DefaultCacheDir returns the per-user download cache directory.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tankterrain")
}

// Resolve turns source into a readable local file path. Existing local files
// are returned unchanged. Remote sources (http, s3, git:: and the other
// go-getter forms) are downloaded once into cacheDir and reused afterwards.
func Resolve(ctx context.Context, source, cacheDir string) (string, error) {
	if source == "" {
		return "", fmt.Errorf("%w: empty source", ErrNotFound)
	}
	if _, err := os.Stat(source); err == nil {
		return source, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	detected, err := getter.Detect(source, pwd, getter.Detectors)
	if err != nil {
		return "", fmt.Errorf("detecting %s: %w", source, err)
	}
	if strings.HasPrefix(detected, "file://") {
		return "", fmt.Errorf("%w: %s", ErrNotFound, source)
	}

	dst := filepath.Join(cacheDir, CacheName(source))
	if _, err := os.Stat(dst); err == nil {
		logger.Debug("asset cache hit", zap.String("source", source), zap.String("path", dst))
		return dst, nil
	}

	if err := Fetch(ctx, source, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Fetch downloads a single file from source to dst.
func Fetch(ctx context.Context, source, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}

	pwd, err := os.Getwd()
	if err != nil {
		return err
	}

	logger.Info("downloading asset", zap.String("source", source), zap.String("dst", dst))

	// Download next to dst so a failed transfer never leaves a partial cache entry.
	tmp := dst + ".part"
	client := &getter.Client{
		Ctx:  ctx,
		Src:  source,
		Dst:  tmp,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("fetching %s: %w", source, err)
	}
	return os.Rename(tmp, dst)
}

// CacheName maps a source to a stable file name that keeps its extension.
func CacheName(source string) string {
	sum := sha256.Sum256([]byte(source))
	name := hex.EncodeToString(sum[:8])

	u := source
	if i := strings.Index(u, "::"); i >= 0 {
		u = u[i+2:]
	}
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return name + strings.ToLower(path.Ext(u))
}
