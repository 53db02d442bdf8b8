// Package transcript hosts the stack transcript: it owns the item store,
// the rendered identity list, the scroll policy and the message banner,
// and draws the visible part of the list.
package transcript

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/Akashdeep-Patra/rpn-stack/internal/banner"
	"github.com/Akashdeep-Patra/rpn-stack/internal/layout"
	"github.com/Akashdeep-Patra/rpn-stack/internal/logx"
	"github.com/Akashdeep-Patra/rpn-stack/internal/scroll"
	"github.com/Akashdeep-Patra/rpn-stack/internal/stack"
	"github.com/Akashdeep-Patra/rpn-stack/internal/ui"
)

// Options configure a Model.
type Options struct {
	Styles  ui.Styles
	Metrics layout.Metrics
	// ItemSpacing is the number of blank rows between entries.
	ItemSpacing int
	// MaxContentWidth caps the entry width; 0 means no cap.
	MaxContentWidth int
	// Animate eases automatic scrolls over several frames.
	Animate bool
	// Welcome, when set, is shown in the banner from the start.
	Welcome string
	Logger  pslog.Logger
	Keys    KeyMap
}

type cellKey struct {
	index     int
	alternate bool
}

// geometry is the cached layout of one item at one width.
type geometry struct {
	width  int
	entry  layout.Entry
	height int
	rows   map[cellKey][]string
}

// Model is the transcript host. It is driven from the bubbletea update
// loop only.
type Model struct {
	styles    ui.Styles
	ts        *layout.Typesetter
	spacing   int
	maxWidth  int
	animate   bool
	alternate bool
	keys      KeyMap
	log       pslog.Logger

	store    stack.Store
	rendered []stack.ID
	live     map[stack.ID]stack.Item
	cache    map[stack.ID]*geometry

	policy scroll.Policy
	banner *banner.Banner

	width, height int
	entryWidth    int
	heights       []int
	content       int

	offset    float64
	target    float64
	animating bool
	animSeq   int
	userSeq   int

	// stale forces the next Sync to redraw every surviving entry.
	stale bool
}

// New returns an empty transcript.
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logx.Discard()
	}
	keys := opts.Keys
	if len(keys.PageUp.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	b := banner.New()
	if opts.Welcome != "" {
		b = banner.NewShowingInfo(opts.Welcome)
	}
	return &Model{
		styles:   opts.Styles,
		ts:       layout.NewTypesetter(opts.Metrics),
		spacing:  max(0, opts.ItemSpacing),
		maxWidth: max(0, opts.MaxContentWidth),
		animate:  opts.Animate,
		keys:     keys,
		log:      log.With("component", "transcript"),
		live:     make(map[stack.ID]stack.Item),
		cache:    make(map[stack.ID]*geometry),
		banner:   b,
	}
}

// ── Store mutations ─────────────────────────────────────────────────────────
//
// Mutations only touch the store. The rendered list catches up in Sync.

// Append adds a finalized item to the end of the transcript.
func (m *Model) Append(it stack.Item) {
	m.store.Append(it)
	m.live[it.ID()] = it
	m.policy.NoteItemAdded()
	logx.WithItem(m.log, it).Trace("transcript append")
}

// RemoveLast removes the newest item. It is a no-op when empty.
func (m *Model) RemoveLast() {
	if it, ok := m.store.RemoveLast(); ok {
		logx.WithItem(m.log, it).Trace("transcript remove")
	}
}

// Clear removes every item.
func (m *Model) Clear() {
	m.store.Clear()
	m.log.Trace("transcript clear")
}

// Len is the number of items in the store.
func (m *Model) Len() int { return m.store.Len() }

// Items returns the stored items, oldest first.
func (m *Model) Items() []stack.Item { return m.store.Items() }

// Rendered returns the identities currently drawn, in order.
func (m *Model) Rendered() []stack.ID {
	return append([]stack.ID(nil), m.rendered...)
}

// ── Banner ──────────────────────────────────────────────────────────────────

// ShowInfo asks the banner to show text. Takes effect on the next Sync.
func (m *Model) ShowInfo(text string) { m.banner.ShowInfo(text) }

// ShowError asks the banner to show text as an error.
func (m *Model) ShowError(text string) { m.banner.ShowError(text) }

// ClearMessage asks the banner to hide.
func (m *Model) ClearMessage() { m.banner.Clear() }

// DismissMessage hides the banner straight away, so that whatever is shown
// next starts from a hidden banner.
func (m *Model) DismissMessage() {
	m.banner.Clear()
	m.reconcileBanner()
}

// Banner exposes the banner state.
func (m *Model) Banner() *banner.Banner { return m.banner }

// ── Synchronisation ─────────────────────────────────────────────────────────

// Sync brings the rendered list up to date with the store, reconciles the
// banner, lays everything out and applies the scroll policy. The returned
// command drives any scroll animation.
func (m *Model) Sync() tea.Cmd {
	if m.stale {
		return m.Refresh()
	}
	return m.apply(stack.Diff(m.rendered, m.store.IDs()))
}

// Refresh is Sync that also recomputes every surviving entry, for style
// changes that keep the identities.
func (m *Model) Refresh() tea.Cmd {
	m.stale = false
	return m.apply(stack.Refresh(m.rendered, m.store.IDs()))
}

func (m *Model) apply(u stack.Update) tea.Cmd {
	if !u.Empty() {
		next, err := u.Apply(m.rendered)
		if err != nil {
			// The update was computed from m.rendered, so this is a bug.
			m.log.Error("transcript diff did not apply", "err", err)
			next = m.store.IDs()
		}
		m.rendered = next
		moved := make(map[stack.ID]struct{}, len(u.Inserted))
		for _, ins := range u.Inserted {
			moved[ins.ID] = struct{}{}
		}
		for _, id := range u.Removed {
			if _, ok := moved[id]; !ok {
				delete(m.cache, id)
			}
		}
		for _, id := range u.Reloaded {
			delete(m.cache, id)
		}
		m.log.Debug("transcript synced",
			"removed", len(u.Removed),
			"inserted", len(u.Inserted),
			"reloaded", len(u.Reloaded),
			"items", len(m.rendered),
		)
	}

	m.pruneLive()
	m.reconcileBanner()

	if m.entryWidth <= 0 {
		return nil
	}
	m.LayoutAll(m.entryWidth)
	return m.observe()
}

// pruneLive forgets items that are no longer rendered. A swap removes and
// re-inserts the same identity, so this goes by the rendered list rather
// than by the removals.
func (m *Model) pruneLive() {
	if len(m.live) == len(m.rendered) {
		return
	}
	kept := make(map[stack.ID]struct{}, len(m.rendered))
	for _, id := range m.rendered {
		kept[id] = struct{}{}
	}
	for id := range m.live {
		if _, ok := kept[id]; !ok {
			delete(m.live, id)
		}
	}
}

func (m *Model) reconcileBanner() {
	eff := m.banner.Reconcile()
	if !eff.Changed {
		return
	}
	m.log.Trace("banner reconciled", "state", m.banner.State().String(), "tone", eff.Tone.String())
	if eff.RequestPinned {
		m.policy.RequestPinned()
	}
}

func (m *Model) observe() tea.Cmd {
	v := m.viewport()
	m.offset = v.Clamp(m.offset)
	if !m.animating {
		m.target = m.offset
	} else {
		m.target = v.Clamp(m.target)
	}
	t, ok := m.policy.Observe(v)
	if !ok {
		return nil
	}
	return m.scrollTo(t)
}

// ── Layout ──────────────────────────────────────────────────────────────────

// LayoutAll lays out every rendered entry for the given entry width and
// updates the content height. Widths of zero or less defer layout.
func (m *Model) LayoutAll(width int) {
	if width <= 0 {
		return
	}
	m.entryWidth = width
	m.heights = m.heights[:0]
	total := 0
	for i, id := range m.rendered {
		g := m.geometry(id)
		m.heights = append(m.heights, g.height)
		total += g.height
		if i > 0 {
			total += m.spacing
		}
	}
	m.content = total
	m.log.Trace("transcript laid out", "width", width, "items", len(m.rendered), "content", total)
}

// ContentHeight is the height of every entry plus spacing, in rows.
func (m *Model) ContentHeight() int { return m.content }

func (m *Model) geometry(id stack.ID) *geometry {
	if g, ok := m.cache[id]; ok && g.width == m.entryWidth {
		return g
	}
	e := m.ts.Entry(m.live[id], float64(m.entryWidth), false)
	g := &geometry{
		width:  m.entryWidth,
		entry:  e,
		height: rowsFor(e, m.ts.Metrics().Font),
		rows:   make(map[cellKey][]string),
	}
	m.cache[id] = g
	return g
}

func rowsFor(e layout.Entry, f layout.Font) int {
	lh := f.LineHeight
	if lh <= 0 {
		lh = 1
	}
	return int(math.Ceil(e.Height/lh - 1e-9))
}

// ── Size and appearance ─────────────────────────────────────────────────────

// SetSize sets the area the transcript draws into, banner row included.
// The rightmost column holds the scrollbar. A change of entry width pins
// the view to the bottom unless the user is scrolling.
func (m *Model) SetSize(width, height int) {
	wasBottom := m.viewport().AtBottom()
	m.width, m.height = max(0, width), max(0, height)

	w := m.width - 1
	if m.maxWidth > 0 {
		w = min(w, m.maxWidth)
	}
	if w <= 0 {
		return
	}
	reflowed := w != m.entryWidth
	if reflowed {
		m.LayoutAll(w)
	}
	switch {
	case m.policy.UserScrolling():
	case reflowed:
		// Entries moved under the viewport; show the newest one again.
		m.animating = false
		m.ScrollToBottom()
	case wasBottom:
		m.offset = m.viewport().BottomOffset()
		m.target = m.offset
		m.animating = false
	}
	m.offset = m.viewport().Clamp(m.offset)
}

// SetStyles swaps the styles. Entries are redrawn on the next Sync.
func (m *Model) SetStyles(s ui.Styles) {
	m.styles = s
	m.stale = true
}

// SetAlternateColors switches between the standard and the rainbow entry
// colors. Entries are redrawn on the next Sync.
func (m *Model) SetAlternateColors(on bool) {
	if on != m.alternate {
		m.alternate = on
		m.stale = true
	}
}

// AlternateColors reports whether rainbow entry colors are active.
func (m *Model) AlternateColors() bool { return m.alternate }

func (m *Model) listHeight() int {
	h := m.height
	if m.banner.Visible() {
		h--
	}
	return max(0, h)
}

func (m *Model) viewport() scroll.Viewport {
	return scroll.Viewport{
		ContentHeight: float64(m.content),
		Height:        float64(m.listHeight()),
		Offset:        m.offset,
	}
}

// Offset is the first visible content row.
func (m *Model) Offset() int { return int(m.offset) }

// AtBottom reports whether the newest content is in view.
func (m *Model) AtBottom() bool { return m.viewport().AtBottom() }
