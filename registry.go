package rtpapi

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNoProvider is returned by locator variants when no random-teleport
	// provider is currently registered.
	ErrNoProvider = errors.New("no random teleport provider registered")

	// ErrAlreadyRegistered is returned by Register when the slot is occupied.
	ErrAlreadyRegistered = errors.New("random teleport provider already registered")
)

// PluginMeta identifies the plugin that registered a provider.
type PluginMeta struct {
	Name    string
	Version string
}

// Registry holds the single registered random-teleport provider. The host
// constructs one and hands it to plugins explicitly; nothing in this package
// is process-global. Registration may be swapped at runtime as the providing
// plugin is enabled and disabled. Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	sched  Scheduler
	plugin *PluginMeta
	api    *API
}

// NewRegistry creates an empty registry. sched is the host scheduler handed
// to the API wrapper on registration; it may be nil.
func NewRegistry(sched Scheduler) *Registry {
	return &Registry{sched: sched}
}

// Register installs p as the provider. Returns ErrAlreadyRegistered when a
// provider is already installed.
func (r *Registry) Register(plugin PluginMeta, p Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.api != nil {
		return fmt.Errorf("%w: held by %s", ErrAlreadyRegistered, r.plugin.Name)
	}
	r.plugin = &plugin
	r.api = New(p, r.sched)
	return nil
}

// Deregister removes the current provider, if any.
func (r *Registry) Deregister() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugin = nil
	r.api = nil
}

// API returns the registered provider's API. ok is false when absent.
func (r *Registry) API() (api *API, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.api, r.api != nil
}

// Find returns the registered provider's API, or nil when absent.
func (r *Registry) Find() *API {
	api, _ := r.API()
	return api
}

// Plugin returns metadata of the registering plugin, or nil when absent.
func (r *Registry) Plugin() *PluginMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.plugin == nil {
		return nil
	}
	meta := *r.plugin
	return &meta
}

// APIOrErr returns the registered API or ErrNoProvider.
func (r *Registry) APIOrErr() (*API, error) {
	return r.APIOrErrWith(func() error { return ErrNoProvider })
}

// APIOrErrWith returns the registered API, or the error built by mkErr when
// no provider is registered.
func (r *Registry) APIOrErrWith(mkErr func() error) (*API, error) {
	api, ok := r.API()
	if !ok {
		return nil, mkErr()
	}
	return api, nil
}

// APIOr returns the registered API; when no provider is registered it runs
// fallback and returns ErrNoProvider.
func (r *Registry) APIOr(fallback func()) (*API, error) {
	api, ok := r.API()
	if !ok {
		fallback()
		return nil, ErrNoProvider
	}
	return api, nil
}

// Execute runs fn iff a provider is registered.
func (r *Registry) Execute(fn func(*API)) {
	if api, ok := r.API(); ok {
		fn(api)
	}
}
