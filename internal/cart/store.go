// Package cart holds the in-memory cart state engine. A Store owns the line
// items of one cart; every mutation goes through its four operations so the
// line invariants (unique key, quantity >= 1, insertion order) hold at all
// times.
package cart

import (
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront-cart/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpClear  Op = "clear"
)

type State string

const (
	StateEmpty     State = "empty"
	StatePopulated State = "populated"
)

// Event describes a mutation that changed the cart. Key is zero for OpClear.
type Event struct {
	Op  Op
	Key models.LineKey
}

// Listener is called after a successful mutation, outside the store lock.
// Listeners read derived values back from the store.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	mu        sync.Mutex
	items     []models.CartItem
	updatedAt time.Time
	listeners []subscription
	nextSubID int
	now       func() time.Time
}

func New() *Store {
	return &Store{now: time.Now}
}

// AddItem merges quantity into the line with the same key, or appends a new
// line. Quantities are clamped to [1, models.MaxLineQuantity], merges
// included, and an empty size is ignored. A merge keeps the unit price frozen
// on the existing line.
func (s *Store) AddItem(product models.ProductSnapshot, size string, quantity int, color string) {
	if size == "" {
		return
	}

	quantity = clampQuantity(quantity)
	key := models.LineKey{ProductID: product.ID, Size: size, Color: color}

	s.mu.Lock()
	if i := s.indexOf(key); i >= 0 {
		s.items[i].Quantity = mergeQuantity(s.items[i].Quantity, quantity)
	} else {
		s.items = append(s.items, models.CartItem{
			Product:  product,
			Size:     size,
			Color:    color,
			Quantity: quantity,
		})
	}
	s.updatedAt = s.now()
	s.mu.Unlock()

	s.notify(Event{Op: OpAdd, Key: key})
}

// UpdateQuantity sets the quantity of an existing line, capped at
// models.MaxLineQuantity. A quantity of zero or less removes the line. Unknown
// keys are a no-op.
func (s *Store) UpdateQuantity(productID uuid.UUID, size string, quantity int, color string) {
	key := models.LineKey{ProductID: productID, Size: size, Color: color}

	if quantity <= 0 {
		s.remove(key, OpUpdate)
		return
	}

	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity = clampQuantity(quantity)
	s.updatedAt = s.now()
	s.mu.Unlock()

	s.notify(Event{Op: OpUpdate, Key: key})
}

func (s *Store) RemoveItem(productID uuid.UUID, size string, color string) {
	s.remove(models.LineKey{ProductID: productID, Size: size, Color: color}, OpRemove)
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.updatedAt = s.now()
	s.mu.Unlock()

	s.notify(Event{Op: OpClear})
}

func (s *Store) remove(key models.LineKey, op Op) {
	s.mu.Lock()
	i := s.indexOf(key)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = slices.Delete(s.items, i, i+1)
	s.updatedAt = s.now()
	s.mu.Unlock()

	s.notify(Event{Op: op, Key: key})
}

// Restore replaces the contents with previously persisted lines. Lines that
// break the invariants are dropped and duplicate keys are merged. Listeners
// are not notified.
func (s *Store) Restore(items []models.CartItem, updatedAt time.Time) {
	restored := make([]models.CartItem, 0, len(items))

	for _, item := range items {
		if item.Size == "" || item.Quantity < 1 {
			continue
		}

		item.LineTotal = decimal.Decimal{}
		item.Quantity = clampQuantity(item.Quantity)

		if i := slices.IndexFunc(restored, func(c models.CartItem) bool { return c.Key() == item.Key() }); i >= 0 {
			restored[i].Quantity = mergeQuantity(restored[i].Quantity, item.Quantity)
			continue
		}
		restored = append(restored, item)
	}

	s.mu.Lock()
	s.items = restored
	s.updatedAt = updatedAt
	s.mu.Unlock()
}

// Items returns a copy of the lines in insertion order with line totals set.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.itemsLocked()
}

func (s *Store) itemsLocked() []models.CartItem {
	items := make([]models.CartItem, len(s.items))
	for i, item := range s.items {
		item.LineTotal = item.Product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items[i] = item
	}

	return items
}

// TotalItemCount is the sum of quantities over all lines.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.countLocked()
}

func (s *Store) countLocked() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

// Total is the exact sum of unit price times quantity. Rounding is left to
// the caller at display time.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.totalLocked()
}

func (s *Store) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

func (s *Store) State() State {
	if s.Len() == 0 {
		return StateEmpty
	}

	return StatePopulated
}

// Snapshot returns a consistent read-only view of the cart.
func (s *Store) Snapshot(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.Cart{
		SessionID: sessionID,
		Items:     s.itemsLocked(),
		ItemCount: s.countLocked(),
		Total:     s.totalLocked(),
		UpdatedAt: s.updatedAt,
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.listeners = slices.DeleteFunc(s.listeners, func(sub subscription) bool { return sub.id == id })
	}
}

func (s *Store) notify(ev Event) {
	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(ev)
	}
}

func clampQuantity(quantity int) int {
	return min(max(quantity, 1), models.MaxLineQuantity)
}

// both operands are already clamped, so the sum cannot overflow
func mergeQuantity(current, added int) int {
	return min(current+added, models.MaxLineQuantity)
}

func (s *Store) indexOf(key models.LineKey) int {
	return slices.IndexFunc(s.items, func(item models.CartItem) bool { return item.Key() == key })
}
