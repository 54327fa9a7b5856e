package dashdoc

// Manifest describes the Info.plist written at the root of a docset.
type Manifest struct {
	BundleIdentifier string
	BundleName       string
	PlatformFamily   string
	IndexFilePath    string

	// JavaScriptEnabled controls whether the viewer runs scripts
	// embedded in pages. Mirrored pages render fine without them.
	JavaScriptEnabled bool
}

// DefaultManifest returns the manifest for the CUDA docset.
func DefaultManifest() Manifest {
	return Manifest{
		BundleIdentifier: "CUDA",
		BundleName:       "CUDA",
		PlatformFamily:   "CUDA",
		IndexFilePath:    ModuleIndexFilename,
	}
}

// Validate returns an error if the manifest contains invalid fields.
func (m *Manifest) Validate() error {
	if m.BundleIdentifier == "" {
		return Errorf(EINVALID, "manifest bundle identifier required")
	}
	if m.BundleName == "" {
		return Errorf(EINVALID, "manifest bundle name required")
	}
	if m.PlatformFamily == "" {
		return Errorf(EINVALID, "manifest platform family required")
	}
	if m.IndexFilePath == "" {
		return Errorf(EINVALID, "manifest index file path required")
	}
	return nil
}
