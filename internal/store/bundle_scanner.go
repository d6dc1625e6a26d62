package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/share-favorites/internal/logger"
	"github.com/MKhiriev/share-favorites/models"
)

// Installed bundles are laid out as <dir>/<Name>.activity/activity/activity.info.
const (
	bundleDirPattern = "*.activity"
	bundleInfoDir    = "activity"
	bundleInfoFile   = "activity.info"
	bundleSection    = "Activity"
	bundleIconExt    = ".svg"
)

// ReadBundleInfo parses the activity.info manifest of the bundle installed
// in bundleDir. The icon path is set only when the icon file exists.
func ReadBundleInfo(bundleDir string) (models.Bundle, error) {
	infoDir := filepath.Join(bundleDir, bundleInfoDir)

	file, err := os.Open(filepath.Join(infoDir, bundleInfoFile))
	if err != nil {
		return models.Bundle{}, fmt.Errorf("open bundle info: %w", err)
	}
	defer file.Close()

	values := make(map[string]string)
	section := ""
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if section != bundleSection {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	if err = scanner.Err(); err != nil {
		return models.Bundle{}, fmt.Errorf("read bundle info: %w", err)
	}

	bundle := models.Bundle{
		ID:      values["bundle_id"],
		Version: values["activity_version"],
		Name:    values["name"],
	}
	if bundle.ID == "" {
		// older bundles only carry service_name
		bundle.ID = values["service_name"]
	}
	if bundle.ID == "" || bundle.Version == "" || strings.Contains(bundle.ID, " ") || strings.Contains(bundle.Version, " ") {
		return models.Bundle{}, fmt.Errorf("%w: %s", ErrMalformedBundleInfo, bundleDir)
	}

	if icon := values["icon"]; icon != "" {
		iconPath := filepath.Join(infoDir, icon+bundleIconExt)
		if _, err = os.Stat(iconPath); err == nil {
			bundle.IconPath = iconPath
		}
	}

	return bundle, nil
}

// SyncInstalledBundles registers every bundle installed under dir in
// registry. Bundles with an unreadable manifest are skipped. It returns the
// number of registered bundles.
func SyncInstalledBundles(ctx context.Context, registry BundleRegistry, dir string, log *logger.Logger) (int, error) {
	bundleDirs, err := filepath.Glob(filepath.Join(dir, bundleDirPattern))
	if err != nil {
		return 0, fmt.Errorf("list bundles in %s: %w", dir, err)
	}

	registered := 0
	for _, bundleDir := range bundleDirs {
		bundle, err := ReadBundleInfo(bundleDir)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debug().Str("dir", bundleDir).Msg("no bundle info, skipping")
			} else {
				log.Warn().Err(err).Str("dir", bundleDir).Msg("skipping bundle")
			}
			continue
		}

		if err = registry.AddBundle(ctx, bundle); err != nil {
			return registered, fmt.Errorf("register bundle %s: %w", bundle.Key(), err)
		}
		registered++
	}

	log.Info().Str("dir", dir).Int("bundles", registered).Msg("installed bundles registered")

	return registered, nil
}
