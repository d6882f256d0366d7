package icons

import (
	"image"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
)

// Scheme prefixes icon URLs: image://<provider>/<id>.
const Scheme = "image://"

type cacheKey struct {
	url  string
	size image.Point
}

// DefaultCacheSize bounds the resources a Registry keeps, misses included.
const DefaultCacheSize = 256

// Registry dispatches icon URLs to named providers and caches the encoded resources.
// Misses are cached too. When the cache is full it is emptied before the next
// entry is stored, so arbitrary ids can not grow it without limit.
type Registry struct {
	// CacheSize overrides DefaultCacheSize when positive.
	CacheSize int

	mu        sync.Mutex
	providers map[string]*Provider
	cache     map[cacheKey]fyne.Resource
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]*Provider),
		cache:     make(map[cacheKey]fyne.Resource),
	}
}

// Register adds p under name. A blank name is a programming error and panics.
func (r *Registry) Register(name string, p *Provider) {
	if strings.TrimSpace(name) == "" {
		panic("icons: provider name can not be empty")
	}
	if p == nil {
		panic("icons: provider can not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
	for key := range r.cache {
		if provider, _, _ := ParseURL(key.url); provider == name {
			delete(r.cache, key)
		}
	}
}

// Provider returns the provider registered under name.
func (r *Registry) Provider(name string) (*Provider, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[name]
	return p, ok
}

// Resource resolves an image:// URL. Unknown providers and missing icons yield nil.
func (r *Registry) Resource(url string, requested image.Point) fyne.Resource {
	name, id, ok := ParseURL(url)
	if !ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := cacheKey{url: url, size: requested}
	if res, found := r.cache[key]; found {
		return res
	}

	p, found := r.providers[name]
	if !found {
		return nil
	}

	res := p.Resource(id, requested)
	if len(r.cache) >= r.cacheLimit() {
		clear(r.cache)
	}
	r.cache[key] = res
	return res
}

func (r *Registry) cacheLimit() int {
	if r.CacheSize > 0 {
		return r.CacheSize
	}
	return DefaultCacheSize
}

// ParseURL splits image://<provider>/<id>. The id keeps everything after the
// first slash, including any '?' color part.
func ParseURL(url string) (provider, id string, ok bool) {
	rest, found := strings.CutPrefix(url, Scheme)
	if !found {
		return "", "", false
	}
	provider, id, found = strings.Cut(rest, "/")
	if !found || provider == "" || id == "" {
		return "", "", false
	}
	return provider, id, true
}

// URL builds the image:// URL of an icon.
func URL(provider, id string) string {
	return Scheme + provider + "/" + id
}
