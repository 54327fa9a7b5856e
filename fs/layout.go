// Package fs provides the on-disk layout of a docset.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/fwojciec/dashdoc"
)

// Paths inside a docset bundle, fixed by the docset format.
const (
	documentsDir  = "Contents/Resources/Documents"
	infoPlistPath = "Contents/Info.plist"
	indexPath     = "Contents/Resources/docSet.dsidx"
	iconFile      = "icon.png"
)

// Layout creates the directory structure of a docset bundle.
type Layout struct {
	root string
}

// NewLayout creates a new Layout rooted at the bundle directory,
// e.g. "./CUDA.docset".
func NewLayout(root string) *Layout {
	return &Layout{root: root}
}

// Root returns the bundle directory.
func (l *Layout) Root() string {
	return l.root
}

// DocumentsDir returns the directory holding the rewritten pages.
func (l *Layout) DocumentsDir() string {
	return filepath.Join(l.root, documentsDir)
}

// IndexPath returns the path of the search index database.
func (l *Layout) IndexPath() string {
	return filepath.Join(l.root, indexPath)
}

// InfoPlistPath returns the path of the manifest.
func (l *Layout) InfoPlistPath() string {
	return filepath.Join(l.root, infoPlistPath)
}

// Create removes any previous bundle at the root, creates the documents
// directory and writes the manifest. If iconPath is not empty the icon is
// copied into the bundle.
func (l *Layout) Create(manifest dashdoc.Manifest, iconPath string) error {
	if err := manifest.Validate(); err != nil {
		return err
	}

	if err := os.RemoveAll(l.root); err != nil {
		return fmt.Errorf("failed to remove previous docset: %w", err)
	}

	if err := os.MkdirAll(l.DocumentsDir(), 0755); err != nil {
		return fmt.Errorf("failed to create documents directory: %w", err)
	}

	if err := WriteManifest(l.InfoPlistPath(), manifest); err != nil {
		return err
	}

	if iconPath != "" {
		if _, err := CopyFile(iconPath, filepath.Join(l.root, iconFile)); err != nil {
			return fmt.Errorf("failed to copy icon: %w", err)
		}
	}

	return nil
}

// WriteManifest writes manifest as an XML property list to path.
func WriteManifest(path string, manifest dashdoc.Manifest) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateDirective(`DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd"`)

	plist := doc.CreateElement("plist")
	plist.CreateAttr("version", "1.0")
	dict := plist.CreateElement("dict")

	addString := func(key, value string) {
		dict.CreateElement("key").SetText(key)
		dict.CreateElement("string").SetText(value)
	}
	addBool := func(key string, value bool) {
		dict.CreateElement("key").SetText(key)
		if value {
			dict.CreateElement("true")
		} else {
			dict.CreateElement("false")
		}
	}

	addString("CFBundleIdentifier", manifest.BundleIdentifier)
	addString("CFBundleName", manifest.BundleName)
	addString("DocSetPlatformFamily", manifest.PlatformFamily)
	addBool("isDashDocset", true)
	addBool("isJavaScriptEnabled", manifest.JavaScriptEnabled)
	addString("dashIndexFilePath", manifest.IndexFilePath)

	doc.Indent(4)

	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
