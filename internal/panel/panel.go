// Package panel coordinates the mutually exclusive top-level panels.
//
// Exactly one primary panel is current at a time. Asynchronous work started
// for a panel holds a Ticket; its result may be applied only while that
// panel is still current.
package panel

// ID names a primary panel.
type ID string

const (
	Trending ID = "Trending"
	Genres   ID = "Genres"
	Search   ID = "Search"
	About    ID = "About"
)

// All lists the primary panels in tab order.
var All = []ID{Trending, Genres, Search, About}

// Slot names a content container owned by a panel.
type Slot string

const (
	SlotGenreList    Slot = "list-genres"
	SlotGenreResults Slot = "genreSpecificGrid"
)

// Surface is what the coordinator drives: panel containers, tab affordances
// and the content slots it resets.
type Surface interface {
	SetPanelHidden(id ID, hidden bool)
	SetTabSelected(id ID, selected bool)
	ClearSlot(slot Slot)
}

// exitSlots are cleared whenever their panel is hidden.
var exitSlots = map[ID][]Slot{
	Genres: {SlotGenreList, SlotGenreResults},
}

// Ticket identifies the panel an asynchronous operation was started under.
type Ticket struct {
	Panel ID
	Seq   uint64
}

// Coordinator owns the current panel.
type Coordinator struct {
	surface Surface
	current ID
	seq     uint64
}

// New returns a coordinator with no current panel.
func New(s Surface) *Coordinator {
	return &Coordinator{surface: s}
}

// Current returns the current panel, or "" before the first Enter.
func (c *Coordinator) Current() ID { return c.current }

// Show makes target the only visible panel and selects its tab. It does not
// change Current.
func (c *Coordinator) Show(target ID) {
	for _, id := range All {
		hide := id != target
		if hide {
			for _, slot := range exitSlots[id] {
				c.surface.ClearSlot(slot)
			}
		}
		c.surface.SetPanelHidden(id, hide)
	}
	for _, id := range All {
		c.surface.SetTabSelected(id, id == target)
	}
}

// Enter makes id current, shows it, and returns the ticket for work started now.
func (c *Coordinator) Enter(id ID) Ticket {
	c.current = id
	c.Show(id)
	return c.Snapshot()
}

// Snapshot returns a ticket for the current panel without switching.
func (c *Coordinator) Snapshot() Ticket {
	c.seq++
	return Ticket{Panel: c.current, Seq: c.seq}
}

// Fresh reports whether work holding t may still touch the surface.
func (c *Coordinator) Fresh(t Ticket) bool {
	return t.Panel != "" && t.Panel == c.current
}
