// Package handles tracks the EMF object table while records are replayed:
// which slot each created object lands in, which stock object is active and
// the statements that select or free them.
package handles

import (
	"fmt"

	emferrors "github.com/provide-io/emfsrc/pkg/emf/errors"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
)

// Kind is the type of object a slot holds.
type Kind int

const (
	KindNone Kind = iota
	KindPen
	KindExtPen
	KindBrush
	KindFont
	KindPalette
)

func (k Kind) String() string {
	switch k {
	case KindPen:
		return "pen"
	case KindExtPen:
		return "extpen"
	case KindBrush:
		return "brush"
	case KindFont:
		return "font"
	case KindPalette:
		return "palette"
	}
	return "none"
}

// Names are the identifiers used in emitted code.
type Names struct {
	Array   string // the handle table array
	Stock   string // the scratch cell for stock objects
	Context string // the device context objects are selected into
}

// DefaultNames match the declarations the header record emits.
var DefaultNames = Names{Array: "gdiHandles", Stock: "g_stockObject", Context: "hdc"}

// Table is the handle table of one decode session. Slot 0 is reserved.
type Table struct {
	names   Names
	bounded bool
	slots   []Kind
	created int
	deleted int
}

// New returns a table with count slots, as declared by the header's
// nHandles.
func New(count int) *Table {
	return NewNamed(count, DefaultNames)
}

// NewNamed is New with custom identifiers.
func NewNamed(count int, names Names) *Table {
	if count < 0 {
		count = 0
	}
	names = names.withDefaults()
	return &Table{names: names, bounded: true, slots: make([]Kind, count)}
}

// NewUnbounded returns a table that accepts any index. It stands in until
// the header declares the real size.
func NewUnbounded(names Names) *Table {
	return &Table{names: names.withDefaults()}
}

func (n Names) withDefaults() Names {
	if n.Array == "" {
		n.Array = DefaultNames.Array
	}
	if n.Stock == "" {
		n.Stock = DefaultNames.Stock
	}
	if n.Context == "" {
		n.Context = DefaultNames.Context
	}
	return n
}

// Len returns the declared slot count, or 0 for an unbounded table.
func (t *Table) Len() int {
	return len(t.slots)
}

// Names returns the identifiers the table renders with.
func (t *Table) Names() Names {
	return t.names
}

// IsStock reports whether index names a stock object.
func IsStock(index uint32) bool {
	return index&gdi.StockFlag != 0
}

// StockName decodes the stock object id carried by index.
func StockName(index uint32) string {
	return gdi.StockObject(index &^ gdi.StockFlag)
}

// SlotRef renders the expression for slot index.
func (t *Table) SlotRef(index uint32) string {
	return fmt.Sprintf("%s[%d]", t.names.Array, index)
}

// StockRef renders the expression that fetches the stock object in index.
func StockRef(index uint32) string {
	return "GetStockObject(" + StockName(index) + ")"
}

func (t *Table) check(index uint32) error {
	if !t.bounded {
		return nil
	}
	if index == 0 || uint64(index) >= uint64(len(t.slots)) {
		return fmt.Errorf("%w: %d not in [1, %d)", emferrors.ErrHandleOutOfRange, index, len(t.slots))
	}
	return nil
}

// Ref renders the expression for index without changing the table: the
// slot for created objects, GetStockObject for stock ids.
func (t *Table) Ref(index uint32) (string, error) {
	if IsStock(index) {
		return StockRef(index), nil
	}
	if err := t.check(index); err != nil {
		return "", err
	}
	return t.SlotRef(index), nil
}

// Create records that an object of kind lands in index and returns the
// slot expression to assign.
func (t *Table) Create(kind Kind, index uint32) (string, error) {
	if err := t.check(index); err != nil {
		return "", err
	}
	if t.bounded {
		t.slots[index] = kind
	}
	t.created++
	return t.SlotRef(index), nil
}

// Select returns the statements that make index current. A stock index
// first loads the object into the scratch cell and then selects the cell.
func (t *Table) Select(index uint32) ([]string, error) {
	if IsStock(index) {
		return []string{
			fmt.Sprintf("%s = %s;", t.names.Stock, StockRef(index)),
			fmt.Sprintf("SelectObject(%s, %s);", t.names.Context, t.names.Stock),
		}, nil
	}
	if err := t.check(index); err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("SelectObject(%s, %s);", t.names.Context, t.SlotRef(index))}, nil
}

// Delete returns the statement that frees index and marks the slot empty.
// Indices are never reused by the stream, so the slot is not recycled.
func (t *Table) Delete(index uint32) (string, error) {
	if IsStock(index) {
		return fmt.Sprintf("DeleteObject(%s);", StockRef(index)), nil
	}
	if err := t.check(index); err != nil {
		return "", err
	}
	if t.bounded {
		t.slots[index] = KindNone
	}
	t.deleted++
	return fmt.Sprintf("DeleteObject(%s);", t.SlotRef(index)), nil
}

// Kind returns what slot index currently holds.
func (t *Table) Kind(index uint32) Kind {
	if !t.bounded || t.check(index) != nil {
		return KindNone
	}
	return t.slots[index]
}

// Stats reports how many objects were created and deleted.
func (t *Table) Stats() (created, deleted int) {
	return t.created, t.deleted
}
