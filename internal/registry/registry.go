package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/opencatalog/catalogd/internal/ctxlog"
	"github.com/opencatalog/catalogd/internal/forms"
)

// Module is the interface an extension implements to be registered. Name
// must match the identifier used in the configuration's plugins list.
type Module interface {
	Name() string
	Register(ctx context.Context, r *Registry) error
}

// Options carries the collaborators the registry's lazily constructed
// default providers depend on. The zero value is usable: a nil authorizer
// denies state changes and nil listers resolve to no memberships.
type Options struct {
	Authz                forms.AuthzChecker
	CollaboratorsEnabled bool
	Orgs                 forms.OrgLister
	Collaborators        forms.CollaboratorLister
}

// Registry resolves dataset and group type-strings to the form provider
// that governs them. A single instance is shared by all request-handling
// goroutines; registration happens once during startup, lookups are
// read-mostly and safe for unbounded concurrent readers.
type Registry struct {
	opts Options

	mu sync.RWMutex

	datasetTypes    map[string]forms.DatasetForm
	datasetFallback forms.DatasetForm
	// datasetClaimed distinguishes an extension-claimed fallback from the
	// lazily installed default, which never blocks a later claim.
	datasetClaimed bool

	groupTypes       map[string]forms.GroupForm
	groupControllers map[string]string
	groupFallback    forms.GroupForm
	groupClaimed     bool
	orgFallback      forms.GroupForm
	orgClaimed       bool

	labels forms.PermissionLabelProvider
}

// New creates an empty Registry whose default providers will be built from
// the given options.
func New(opts Options) *Registry {
	r := &Registry{opts: opts}
	r.clearLocked()
	return r
}

// clearLocked resets every table and slot. Callers hold the write lock
// (or, from New, exclusive ownership).
func (r *Registry) clearLocked() {
	r.datasetTypes = make(map[string]forms.DatasetForm)
	r.datasetFallback = nil
	r.datasetClaimed = false

	r.groupTypes = make(map[string]forms.GroupForm)
	r.groupControllers = make(map[string]string)
	r.groupFallback = nil
	r.groupClaimed = false
	r.orgFallback = nil
	r.orgClaimed = false

	r.labels = nil
}

// Reset atomically clears both axes, the controller table, and every
// fallback slot. It exists for full reconfiguration (and test teardown)
// only; there is no partial reset.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
}

// RegisterDatasetTypes inserts every type-string each form declares into
// the dataset axis and resolves fallback claims. The whole call is
// all-or-nothing: on error the registry is exactly as it was before.
func (r *Registry) RegisterDatasetTypes(ctx context.Context, providers []forms.DatasetForm) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	// Stage against a copy and swap on success so a conflict mid-sequence
	// leaves no partial mutation behind.
	staged := make(map[string]forms.DatasetForm, len(r.datasetTypes))
	for typ, p := range r.datasetTypes {
		staged[typ] = p
	}
	fallback, claimed := r.datasetFallback, r.datasetClaimed

	for _, p := range providers {
		if p.IsFallback() {
			if claimed {
				return &MultipleFallbackError{Axis: AxisDataset}
			}
			fallback, claimed = p, true
		}
		for _, typ := range p.Types() {
			if _, exists := staged[typ]; exists {
				return &DuplicateRegistrationError{Axis: AxisDataset, Type: typ}
			}
			staged[typ] = p
			logger.Debug("Registered dataset type.", "type", typ)
		}
	}

	r.datasetTypes = staged
	r.datasetFallback = fallback
	r.datasetClaimed = claimed
	return nil
}

// RegisterGroupTypes inserts every type-string each form declares into the
// combined group/organization axis. The form's organization flag selects
// which of the two fallback slots a fallback claim lands in, and the
// controller name is recorded per type for route binding. All-or-nothing,
// like RegisterDatasetTypes.
func (r *Registry) RegisterGroupTypes(ctx context.Context, providers []forms.GroupForm) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	stagedTypes := make(map[string]forms.GroupForm, len(r.groupTypes))
	for typ, p := range r.groupTypes {
		stagedTypes[typ] = p
	}
	stagedControllers := make(map[string]string, len(r.groupControllers))
	for typ, controller := range r.groupControllers {
		stagedControllers[typ] = controller
	}
	groupFallback, groupClaimed := r.groupFallback, r.groupClaimed
	orgFallback, orgClaimed := r.orgFallback, r.orgClaimed

	for _, p := range providers {
		controller := p.Controller()

		if p.IsFallback() {
			if p.IsOrganization() {
				if orgClaimed {
					return &MultipleFallbackError{Axis: AxisOrganization}
				}
				orgFallback, orgClaimed = p, true
			} else {
				if groupClaimed {
					return &MultipleFallbackError{Axis: AxisGroup}
				}
				groupFallback, groupClaimed = p, true
			}
		}

		// Type-strings are unique across the combined group+organization
		// space, so one table serves both.
		for _, typ := range p.Types() {
			if _, exists := stagedTypes[typ]; exists {
				return &DuplicateRegistrationError{Axis: AxisGroup, Type: typ}
			}
			stagedTypes[typ] = p
			stagedControllers[typ] = controller
			logger.Debug("Registered group type.", "type", typ, "controller", controller)
		}
	}

	// The core types always route somewhere, even when no extension
	// registered them explicitly.
	if _, ok := stagedControllers["group"]; !ok {
		stagedControllers["group"] = "group"
	}
	if _, ok := stagedControllers["organization"]; !ok {
		stagedControllers["organization"] = "organization"
	}

	r.groupTypes = stagedTypes
	r.groupControllers = stagedControllers
	r.groupFallback, r.groupClaimed = groupFallback, groupClaimed
	r.orgFallback, r.orgClaimed = orgFallback, orgClaimed
	return nil
}

// LookupDatasetForm returns the form governing typ. An empty or unknown
// type resolves to the dataset fallback, installing the built-in default
// there on first use if no extension claimed the slot.
func (r *Registry) LookupDatasetForm(typ string) forms.DatasetForm {
	r.mu.RLock()
	if typ != "" {
		if p, ok := r.datasetTypes[typ]; ok {
			r.mu.RUnlock()
			return p
		}
	}
	p := r.datasetFallback
	r.mu.RUnlock()

	if p != nil {
		return p
	}
	return r.installDatasetFallback()
}

func (r *Registry) installDatasetFallback() forms.DatasetForm {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.datasetFallback == nil {
		r.datasetFallback = forms.NewDefaultDatasetForm()
	}
	return r.datasetFallback
}

// LookupGroupForm returns the form governing typ. An empty type resolves
// to the group fallback; an unregistered "organization" resolves to the
// organization fallback; any other unknown type resolves to the group
// fallback, never the organization one.
func (r *Registry) LookupGroupForm(typ string) forms.GroupForm {
	r.mu.RLock()
	if typ != "" {
		if p, ok := r.groupTypes[typ]; ok {
			r.mu.RUnlock()
			return p
		}
	}
	var p forms.GroupForm
	organization := typ == "organization"
	if organization {
		p = r.orgFallback
	} else {
		p = r.groupFallback
	}
	r.mu.RUnlock()

	if p != nil {
		return p
	}
	return r.installGroupFallback(organization)
}

func (r *Registry) installGroupFallback(organization bool) forms.GroupForm {
	r.mu.Lock()
	defer r.mu.Unlock()
	if organization {
		if r.orgFallback == nil {
			r.orgFallback = forms.NewDefaultOrganizationForm(forms.NewDefaultGroupForm(r.opts.Authz))
		}
		return r.orgFallback
	}
	if r.groupFallback == nil {
		r.groupFallback = forms.NewDefaultGroupForm(r.opts.Authz)
	}
	return r.groupFallback
}

// LookupGroupController returns the routing controller bound to a group or
// organization type. Absence is explicit: an unregistered type is a
// routing-time condition for the caller to handle, not a silent default.
func (r *Registry) LookupGroupController(typ string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	controller, ok := r.groupControllers[typ]
	return controller, ok
}

// SetPermissionLabels installs a label provider. The first provider
// installed wins; later calls are ignored, mirroring registration order
// precedence among extensions.
func (r *Registry) SetPermissionLabels(p forms.PermissionLabelProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.labels == nil {
		r.labels = p
	}
}

// PermissionLabels returns the installed label provider, building the
// default one on first use when no extension supplied any.
func (r *Registry) PermissionLabels() forms.PermissionLabelProvider {
	r.mu.RLock()
	p := r.labels
	r.mu.RUnlock()
	if p != nil {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.labels == nil {
		r.labels = &forms.DefaultPermissionLabels{
			CollaboratorsEnabled: r.opts.CollaboratorsEnabled,
			Orgs:                 r.opts.Orgs,
			Collaborators:        r.opts.Collaborators,
		}
	}
	return r.labels
}

// TypeRoute describes one registered type for the route binder: enough to
// mount a URL namespace without reaching back into the registry.
type TypeRoute struct {
	Type           string `json:"type"`
	Axis           Axis   `json:"axis"`
	Controller     string `json:"controller"`
	IsOrganization bool   `json:"is_organization"`
}

// Routes lists every registered non-core type in a deterministic order.
// The core "dataset", "group", and "organization" types are mounted by the
// host's built-in controllers and are not repeated here.
func (r *Registry) Routes() []TypeRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make([]TypeRoute, 0, len(r.datasetTypes)+len(r.groupTypes))

	for typ := range r.datasetTypes {
		if typ == "dataset" {
			continue
		}
		routes = append(routes, TypeRoute{
			Type:       typ,
			Axis:       AxisDataset,
			Controller: "dataset",
		})
	}

	for typ, p := range r.groupTypes {
		if typ == "group" || typ == "organization" {
			continue
		}
		axis := AxisGroup
		if p.IsOrganization() {
			axis = AxisOrganization
		}
		routes = append(routes, TypeRoute{
			Type:           typ,
			Axis:           axis,
			Controller:     r.groupControllers[typ],
			IsOrganization: p.IsOrganization(),
		})
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Axis != routes[j].Axis {
			return routes[i].Axis < routes[j].Axis
		}
		return routes[i].Type < routes[j].Type
	})
	return routes
}
