package skeleton

import (
	"sync"
	"weak"

	"github.com/go-drift/skeleton/pkg/graphics"
	"github.com/go-drift/skeleton/pkg/platform"
	"github.com/go-drift/skeleton/pkg/theme"
	"github.com/go-drift/skeleton/pkg/view"
)

// AppearanceSource reports the display brightness and its changes.
// *platform.AppearanceService implements it.
type AppearanceSource interface {
	Brightness() theme.Brightness
	AddHandler(handler platform.AppearanceHandler) func()
}

var _ AppearanceSource = (*platform.AppearanceService)(nil)

// group is the set of nodes shown by one call. Members are weak so nodes
// discarded by the host (e.g. recycled cells) do not stay alive.
type group struct {
	members []weak.Pointer[view.Node]
	// cover is the caller's explicit color, or nil to resolve per node.
	cover *theme.DynamicColor
}

// listViewport is implemented by lists that expose their viewport node.
// The viewport stops receiving input while its rows show loaders.
type listViewport interface {
	Node() *view.Node
}

// Registry tracks every node with an active loader.
//
// A single mutex serializes registry calls against each other and against
// appearance rebuilds, so Show, Hide and appearance events may come from
// different goroutines. Nodes, attachments and sweeps are not synchronized:
// painting the tree and stepping tickers belong to the host's frame loop,
// which must not run concurrently with registry calls on the same nodes.
type Registry struct {
	mu          sync.Mutex
	cfg         Config
	brightness  theme.Brightness
	groups      []*group
	attachments map[weak.Pointer[view.Node]]*Attachment
	// lists holds the interactivity each list viewport had before its
	// loaders were shown.
	lists       map[weak.Pointer[view.Node]]bool
	unsubscribe func()
}

// NewRegistry validates cfg and creates a registry subscribed to
// appearance changes of source.
func NewRegistry(cfg Config, source AppearanceSource) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Registry{
		cfg:         cfg,
		brightness:  source.Brightness(),
		attachments: make(map[weak.Pointer[view.Node]]*Attachment),
		lists:       make(map[weak.Pointer[view.Node]]bool),
	}
	r.unsubscribe = source.AddHandler(r.appearanceChanged)
	return r, nil
}

// Config returns the sweep configuration.
func (r *Registry) Config() Config { return r.cfg }

// Close unsubscribes from appearance changes. Loaders stay installed.
// Registries that live for the whole process never need to call it.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}

// ShowLoader shows a loader on n covered with the color resolved from its
// hierarchy.
func (r *Registry) ShowLoader(n *view.Node) {
	r.ShowOnNodes([]*view.Node{n}, nil)
}

// HideLoader removes the loader from n. It is a no-op if none is shown.
func (r *Registry) HideLoader(n *view.Node) {
	r.HideFromNodes([]*view.Node{n})
}

// ShowOnNodes shows loaders on nodes, which form one group sharing cover.
// A nil cover resolves each node's color from its hierarchy. Nodes that
// already show a loader are rebuilt and move to the new group.
func (r *Registry) ShowOnNodes(nodes []*view.Node, cover *theme.DynamicColor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()

	g := &group{}
	if cover != nil {
		c := *cover
		g.cover = &c
	}
	seen := make(map[weak.Pointer[view.Node]]bool, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		key := weak.Make(n)
		if seen[key] {
			continue
		}
		seen[key] = true
		r.removeMember(key)
		r.show(n, key, g)
		g.members = append(g.members, key)
	}
	if len(g.members) > 0 {
		r.groups = append(r.groups, g)
	}
	r.dropEmptyGroups()
}

// HideFromNodes removes loaders from nodes and forgets their group
// membership.
func (r *Registry) HideFromNodes(nodes []*view.Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range nodes {
		if n == nil {
			continue
		}
		key := weak.Make(n)
		if a, ok := r.attachments[key]; ok {
			a.detach(n)
			delete(r.attachments, key)
		}
		r.removeMember(key)
	}
	r.prune()
}

// ShowOnList shows loaders on the content of the list's currently visible
// items as one group. Call it again when the visible items change. Lists
// exposing a viewport node stop receiving input until HideFromList.
func (r *Registry) ShowOnList(list view.ListLoadable, cover *theme.DynamicColor) {
	r.ShowOnNodes(list.VisibleContentNodes(), cover)

	vp, ok := list.(listViewport)
	if !ok || vp.Node() == nil {
		return
	}
	n := vp.Node()
	r.mu.Lock()
	defer r.mu.Unlock()
	key := weak.Make(n)
	if _, saved := r.lists[key]; !saved {
		r.lists[key] = n.Interactive()
	}
	n.SetInteractive(false)
}

// HideFromList removes loaders from the content of the list's currently
// visible items and restores the viewport's interactivity.
func (r *Registry) HideFromList(list view.ListLoadable) {
	r.HideFromNodes(list.VisibleContentNodes())

	vp, ok := list.(listViewport)
	if !ok || vp.Node() == nil {
		return
	}
	n := vp.Node()
	r.mu.Lock()
	defer r.mu.Unlock()
	key := weak.Make(n)
	if interactive, saved := r.lists[key]; saved {
		n.SetInteractive(interactive)
		delete(r.lists, key)
	}
}

// ShowListLoader shows loaders on the list's visible content, each covered
// with the color resolved from its hierarchy.
func (r *Registry) ShowListLoader(list view.ListLoadable) {
	r.ShowOnList(list, nil)
}

// HideListLoader removes loaders from the list's visible content.
func (r *Registry) HideListLoader(list view.ListLoadable) {
	r.HideFromList(list)
}

// IsShowing reports whether n has an active loader.
func (r *Registry) IsShowing(n *view.Node) bool {
	_, ok := r.Attachment(n)
	return ok
}

// Attachment returns the loader state installed on n.
func (r *Registry) Attachment(n *view.Node) (*Attachment, bool) {
	if n == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	a, ok := r.attachments[weak.Make(n)]
	return a, ok
}

// ActiveCount returns the number of live loaders.
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	return len(r.attachments)
}

// GroupCount returns the number of groups with at least one live member.
func (r *Registry) GroupCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	return len(r.groups)
}

// Brightness returns the brightness loaders were last built for.
func (r *Registry) Brightness() theme.Brightness {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.brightness
}

// Prune drops members whose nodes were collected, stopping their sweeps,
// and drops groups left empty. Every other method prunes as well.
func (r *Registry) Prune() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
}

// appearanceChanged rebuilds every live loader with colors resolved for
// the new brightness. The lock is held for the whole rebuild, so no caller
// observes a node between its teardown and its new loader.
func (r *Registry) appearanceChanged(b theme.Brightness) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.brightness = b
	r.prune()
	for _, g := range r.groups {
		for _, key := range g.members {
			n := key.Value()
			if n == nil {
				continue
			}
			r.show(n, key, g)
		}
	}
}

// show replaces any loader on n with a fresh one.
func (r *Registry) show(n *view.Node, key weak.Pointer[view.Node], g *group) {
	if a, ok := r.attachments[key]; ok {
		a.detach(n)
	}
	r.attachments[key] = attach(n, r.coverFor(n, g), r.cfg, theme.LoaderPaletteFor(r.brightness))
}

func (r *Registry) coverFor(n *view.Node, g *group) graphics.Color {
	if g.cover != nil {
		if c := g.cover.Resolve(r.brightness); !c.IsTransparent() {
			return c
		}
	}
	return ResolveCoverColor(n, r.brightness)
}

// removeMember removes key from every group without touching its loader.
func (r *Registry) removeMember(key weak.Pointer[view.Node]) {
	for _, g := range r.groups {
		for i, m := range g.members {
			if m == key {
				g.members = append(g.members[:i], g.members[i+1:]...)
				break
			}
		}
	}
}

func (r *Registry) prune() {
	for _, g := range r.groups {
		live := g.members[:0]
		for _, m := range g.members {
			if m.Value() != nil {
				live = append(live, m)
			}
		}
		clear(g.members[len(live):])
		g.members = live
	}
	for key, a := range r.attachments {
		if key.Value() == nil {
			a.detach(nil)
			delete(r.attachments, key)
		}
	}
	for key := range r.lists {
		if key.Value() == nil {
			delete(r.lists, key)
		}
	}
	r.dropEmptyGroups()
}

func (r *Registry) dropEmptyGroups() {
	kept := r.groups[:0]
	for _, g := range r.groups {
		if len(g.members) > 0 {
			kept = append(kept, g)
		}
	}
	clear(r.groups[len(kept):])
	r.groups = kept
}
