// Package model provides the data structures shared by the plugin installer
// and the catalog: manifests, catalog entries and derived plugin status.
package model

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/glorpus-work/plugport/pkg/errors"
	"github.com/hashicorp/go-version"
)

// Status is the derived installation state of a plugin.
type Status int

const (
	// StatusNotDownloaded means no local archive or manifest was matched.
	StatusNotDownloaded Status = 0
	// StatusInstalled means a manifest exists for the plugin.
	StatusInstalled Status = 1
	// StatusDownloaded means an archive exists but no manifest.
	StatusDownloaded Status = 2
	// StatusUpdateAvailable means the catalog offers a newer version than the installed one.
	StatusUpdateAvailable Status = 3
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusNotDownloaded:
		return "not downloaded"
	case StatusInstalled:
		return "installed"
	case StatusDownloaded:
		return "downloaded"
	case StatusUpdateAvailable:
		return "update available"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// UnmarshalJSON accepts the status as a number or a numeric string, the
// catalog has sent both.
func (s *Status) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = Status(n)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("invalid plugin status %s: %w", data, err)
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return fmt.Errorf("invalid plugin status %q: %w", str, err)
	}
	*s = Status(n)
	return nil
}

// Depends lists what a plugin declares it needs. All fields are optional.
type Depends struct {
	Engine     string            `json:"PHP,omitempty"`
	Database   string            `json:"MySQL,omitempty"`
	Framework  string            `json:"PhalApi,omitempty"`
	Packages   map[string]string `json:"composer,omitempty"`
	Extensions []string          `json:"extension,omitempty"`
}

// UnmarshalJSON accepts the forms PHP writes for empty collections: the whole
// object, composer and extension may each be [] instead of {}. An extension
// list sent as an object keeps its values in key order.
func (d *Depends) UnmarshalJSON(data []byte) error {
	if isEmptyJSONArray(data) {
		*d = Depends{}
		return nil
	}

	var raw struct {
		Engine     string          `json:"PHP"`
		Database   string          `json:"MySQL"`
		Framework  string          `json:"PhalApi"`
		Packages   json.RawMessage `json:"composer"`
		Extensions json.RawMessage `json:"extension"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := Depends{Engine: raw.Engine, Database: raw.Database, Framework: raw.Framework}
	if len(raw.Packages) > 0 && !isEmptyJSONArray(raw.Packages) {
		if err := json.Unmarshal(raw.Packages, &parsed.Packages); err != nil {
			return fmt.Errorf("plugin_depends.composer: %w", err)
		}
	}
	if len(raw.Extensions) > 0 && !isEmptyJSONArray(raw.Extensions) {
		extensions, err := decodeExtensions(raw.Extensions)
		if err != nil {
			return fmt.Errorf("plugin_depends.extension: %w", err)
		}
		parsed.Extensions = extensions
	}

	*d = parsed
	return nil
}

func decodeExtensions(data []byte) ([]string, error) {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var byKey map[string]string
	if err := json.Unmarshal(data, &byKey); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	list = make([]string, 0, len(keys))
	for _, k := range keys {
		list = append(list, byKey[k])
	}
	return list, nil
}

// isEmptyJSONArray reports whether data is [] (any spacing) or null.
func isEmptyJSONArray(data []byte) bool {
	var items []json.RawMessage
	return json.Unmarshal(data, &items) == nil && len(items) == 0
}

// PackageNames returns the declared package names in sorted order.
func (d Depends) PackageNames() []string {
	names := make([]string, 0, len(d.Packages))
	for name := range d.Packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Manifest describes an installed plugin. It is written to plugins/<key>.json
// by the plugin archive.
type Manifest struct {
	Key     string  `json:"plugin_key"`
	Name    string  `json:"plugin_name"`
	Author  string  `json:"plugin_author"`
	Version string  `json:"plugin_version"`
	Depends Depends `json:"plugin_depends"`
}

// GetVersion returns the parsed version of the manifest, or nil when it does not parse.
func (m *Manifest) GetVersion() *version.Version {
	return parseVersion(m.Version)
}

// ParseManifest decodes a manifest and checks that it names a plugin key.
func ParseManifest(r io.Reader) (*Manifest, error) {
	manifest := &Manifest{}
	if err := json.NewDecoder(r).Decode(manifest); err != nil {
		return nil, errors.Wrap(errors.ErrManifestInvalid, err.Error())
	}
	if manifest.Key == "" {
		return nil, errors.Wrap(errors.ErrManifestInvalid, "plugin_key is empty")
	}
	return manifest, nil
}

// ParseManifestFromPath opens and decodes a manifest file.
func ParseManifestFromPath(path string) (*Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	return ParseManifest(file)
}

// CatalogItem is one plugin entry as listed by the remote catalog or
// synthesized from local files. The version tag keeps the catalog's spelling.
type CatalogItem struct {
	Key     string `json:"plugin_key"`
	Name    string `json:"plugin_name"`
	Author  string `json:"plugin_author"`
	Version string `json:"plugin_verion,omitempty"`
	Status  Status `json:"plugin_status"`
}

// ListResult is a page of catalog items.
type ListResult struct {
	Total int            `json:"total"`
	Items []*CatalogItem `json:"items"`
}

// EmptyListResult is returned when the catalog cannot be reached.
func EmptyListResult() ListResult {
	return ListResult{Total: 0, Items: []*CatalogItem{}}
}

// IsNewer reports whether candidate is a strictly newer version than current.
// When either side does not parse as a version the answer is false.
func IsNewer(candidate, current string) bool {
	c := parseVersion(candidate)
	v := parseVersion(current)
	if c == nil || v == nil {
		return false
	}
	return c.GreaterThan(v)
}

func parseVersion(s string) *version.Version {
	v, err := version.NewVersion(s)
	if err != nil {
		return nil
	}
	return v
}
