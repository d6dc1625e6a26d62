package models

// Bundle is an installed application bundle as known by the local registry.
type Bundle struct {
	ID       string `json:"bundle_id"`
	Version  string `json:"version"`
	Name     string `json:"name"`
	IconPath string `json:"icon_path"`
	Favorite bool   `json:"favorite"`
}

// Key returns the bundle key of b.
func (b Bundle) Key() BundleKey {
	return BundleKey{BundleID: b.ID, Version: b.Version}
}
