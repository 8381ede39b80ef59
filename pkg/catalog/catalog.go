// Package catalog lists plugins from the remote marketplace and from the
// local plugins directory and derives each plugin's status.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/glorpus-work/plugport/internal/logger"
	"github.com/glorpus-work/plugport/pkg/fsutil"
	pkghttp "github.com/glorpus-work/plugport/pkg/http"
	"github.com/glorpus-work/plugport/pkg/model"
	"github.com/glorpus-work/plugport/pkg/plugin"
)

// DefaultTimeout bounds every catalog request.
const DefaultTimeout = 10 * time.Second

// Options configures a Catalog.
type Options struct {
	BaseURL  string
	PromoURL string
	// Host is reported to the catalog as the requesting portal.
	Host string
	// Version is the local framework version reported to the catalog.
	Version string
	Timeout time.Duration
}

// Catalog reconciles the remote marketplace with local plugin files.
type Catalog struct {
	client     pkghttp.Client
	pluginsDir string
	opts       Options
}

// NewCatalog creates a catalog reading local files from pluginsDir.
func NewCatalog(client pkghttp.Client, pluginsDir string, opts Options) *Catalog {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Host == "" {
		opts.Host = "localhost"
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Catalog{client: client, pluginsDir: pluginsDir, opts: opts}
}

type marketResponse struct {
	Total   json.Number     `json:"total"`
	Plugins json.RawMessage `json:"plugins"`
}

type hotResponse struct {
	Hot string `json:"hot"`
}

// MarketURL builds the listing request URL.
func (c *Catalog) MarketURL(page, perPage int, searchParams map[string]string) string {
	if searchParams == nil {
		searchParams = map[string]string{}
	}
	search, _ := json.Marshal(searchParams)

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perpage", strconv.Itoa(perPage))
	query.Set("searchParams", string(search))
	query.Set("host", c.opts.Host)
	query.Set("version", c.opts.Version)
	return c.opts.BaseURL + "/plugins.php?" + query.Encode()
}

// ListMarket fetches one page of the remote catalog and marks each entry
// with its local status. Any fetch or decode failure yields an empty result.
func (c *Catalog) ListMarket(ctx context.Context, page, perPage int, searchParams map[string]string) model.ListResult {
	body, err := c.get(ctx, c.MarketURL(page, perPage, searchParams))
	if err != nil {
		logger.Debug("catalog listing failed", logger.Fields{"error": err})
		return model.EmptyListResult()
	}

	var resp marketResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		logger.Debug("catalog listing is not valid JSON", logger.Fields{"error": err})
		return model.EmptyListResult()
	}
	items, err := decodePlugins(resp.Plugins)
	if err != nil {
		logger.Debug("catalog plugins are malformed", logger.Fields{"error": err})
		return model.EmptyListResult()
	}
	total, err := resp.Total.Int64()
	if err != nil {
		total = int64(len(items))
	}

	installed, downloaded := c.scanLocal()
	for _, item := range items {
		if localVersion, ok := installed[item.Key]; ok {
			if model.IsNewer(item.Version, localVersion) {
				item.Status = model.StatusUpdateAvailable
			} else {
				item.Status = model.StatusInstalled
			}
			continue
		}
		if downloaded[item.Key] {
			item.Status = model.StatusDownloaded
		}
	}

	return model.ListResult{Total: int(total), Items: items}
}

// ListMine lists installed manifests and archives without a manifest.
func (c *Catalog) ListMine() model.ListResult {
	items := []*model.CatalogItem{}
	seen := map[string]bool{}

	for _, manifest := range c.manifests() {
		if seen[manifest.Key] {
			continue
		}
		seen[manifest.Key] = true
		items = append(items, &model.CatalogItem{
			Key:     manifest.Key,
			Name:    manifest.Name,
			Author:  manifest.Author,
			Version: manifest.Version,
			Status:  model.StatusInstalled,
		})
	}

	for _, key := range c.archiveKeys() {
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, &model.CatalogItem{
			Key:    key,
			Name:   "-",
			Author: "-",
			Status: model.StatusNotDownloaded,
		})
	}

	sortItems(items)
	return model.ListResult{Total: len(items), Items: items}
}

// TopContent renders the marketplace banner followed by the catalog's hot
// plugins fragment. The fragment is empty when the catalog is unreachable.
func (c *Catalog) TopContent(ctx context.Context) string {
	var hot hotResponse
	body, err := c.get(ctx, c.opts.BaseURL+"/plugins_hot.php")
	if err != nil {
		logger.Debug("hot plugins fetch failed", logger.Fields{"error": err})
	} else if err := json.Unmarshal(body, &hot); err != nil {
		logger.Debug("hot plugins response is not valid JSON", logger.Fields{"error": err})
		hot.Hot = ""
	}

	return fmt.Sprintf(`<blockquote class="layui-elem-quote">Current host: %s, PhalApi version: v%s. `+
		`More plugins and applications at <a href="%s" target="_blank" class="layui-btn layui-btn-normal layui-btn-sm">PhalApi marketplace</a>.%s</blockquote>`,
		c.opts.Host, c.opts.Version, c.PromoLink(), hot.Hot)
}

// PromoLink is the marketplace link tagged with the requesting host.
func (c *Catalog) PromoLink() string {
	return c.opts.PromoURL + "?from_portal=" + url.QueryEscape(c.opts.Host)
}

func (c *Catalog) get(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()
	return c.client.Get(ctx, rawURL)
}

// decodePlugins accepts the plugins member as an object keyed by plugin key
// or as an array; an empty listing arrives as [].
func decodePlugins(raw json.RawMessage) ([]*model.CatalogItem, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []*model.CatalogItem{}, nil
	}

	var items []*model.CatalogItem
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
	} else {
		byKey := map[string]*model.CatalogItem{}
		if err := json.Unmarshal(raw, &byKey); err != nil {
			return nil, err
		}
		for key, item := range byKey {
			if item == nil {
				continue
			}
			if item.Key == "" {
				item.Key = key
			}
			items = append(items, item)
		}
	}

	out := make([]*model.CatalogItem, 0, len(items))
	for _, item := range items {
		if item != nil && item.Key != "" {
			out = append(out, item)
		}
	}
	sortItems(out)
	return out, nil
}

// scanLocal returns installed versions by manifest key and the keys of
// archives that have no manifest.
func (c *Catalog) scanLocal() (map[string]string, map[string]bool) {
	installed := map[string]string{}
	for _, manifest := range c.manifests() {
		installed[manifest.Key] = manifest.Version
	}

	downloaded := map[string]bool{}
	for _, key := range c.archiveKeys() {
		if _, ok := installed[key]; !ok {
			downloaded[key] = true
		}
	}
	return installed, downloaded
}

func (c *Catalog) manifests() []*model.Manifest {
	keys, err := fsutil.ListKeys(c.pluginsDir, plugin.ManifestExt)
	if err != nil {
		logger.Warn("cannot list plugin manifests", logger.Fields{"dir": c.pluginsDir, "error": err})
		return nil
	}

	manifests := make([]*model.Manifest, 0, len(keys))
	for _, key := range keys {
		path := filepath.Join(c.pluginsDir, key+plugin.ManifestExt)
		manifest, err := model.ParseManifestFromPath(path)
		if err != nil {
			logger.Warn("skipping unreadable manifest", logger.Fields{"path": path, "error": err})
			continue
		}
		manifests = append(manifests, manifest)
	}
	return manifests
}

func (c *Catalog) archiveKeys() []string {
	keys, err := fsutil.ListKeys(c.pluginsDir, plugin.ArchiveExt)
	if err != nil {
		logger.Warn("cannot list plugin archives", logger.Fields{"dir": c.pluginsDir, "error": err})
		return nil
	}
	return keys
}

func sortItems(items []*model.CatalogItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
}
