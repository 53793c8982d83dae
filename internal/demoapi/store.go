package demoapi

import (
	"sort"
	"sync"
	"time"
)

// collection is a mutex-guarded table keyed by a generated id.
type collection[T any] struct {
	mu    sync.RWMutex
	next  int64
	rows  map[int64]T
	setID func(*T, int64)
}

func newCollection[T any](setID func(*T, int64)) *collection[T] {
	return &collection[T]{rows: make(map[int64]T), setID: setID}
}

// list returns the rows accepted by keep, ordered by id.
func (c *collection[T]) list(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int64, 0, len(c.rows))
	for id, row := range c.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.rows[id])
	}
	return out
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	row, ok := c.rows[id]
	return row, ok
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, row := range c.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) insert(row T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	c.setID(&row, c.next)
	c.rows[c.next] = row
	return row
}

// update applies fn to the stored row and keeps the result.
func (c *collection[T]) update(id int64, fn func(*T)) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	row, ok := c.rows[id]
	if !ok {
		return row, false
	}
	fn(&row)
	c.rows[id] = row
	return row, true
}

func (c *collection[T]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rows[id]; !ok {
		return false
	}
	delete(c.rows, id)
	return true
}

func (c *collection[T]) count(keep func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, row := range c.rows {
		if keep(row) {
			n++
		}
	}
	return n
}

// Store holds the demo API's data.
type Store struct {
	products   *collection[Product]
	orders     *collection[Order]
	categories *collection[Category]
	users      *collection[User]
	now        func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		products:   newCollection(func(p *Product, id int64) { p.ProductID = id }),
		orders:     newCollection(func(o *Order, id int64) { o.OrderID = id }),
		categories: newCollection(func(c *Category, id int64) { c.CategoryID = id }),
		users:      newCollection(func(u *User, id int64) { u.UserID = id }),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Seed adds a small catalogue so a fresh demo has something to list.
func (s *Store) Seed() {
	now := s.now()
	books := s.categories.insert(Category{Name: "Books", Description: "Printed and digital books", CreatedAt: now, UpdatedAt: now})
	office := s.categories.insert(Category{Name: "Office", Description: "Desk and stationery supplies", CreatedAt: now, UpdatedAt: now})

	s.products.insert(Product{CategoryID: books.CategoryID, Name: "Go in Practice", Description: "Paperback", Price: 39.99, Stock: 12, SKU: "BK-GO-001", IsActive: true, CreatedAt: now, UpdatedAt: now})
	s.products.insert(Product{CategoryID: office.CategoryID, Name: "Fountain Pen", Description: "Fine nib", Price: 24.5, Stock: 0, SKU: "OF-PEN-014", IsActive: true, CreatedAt: now, UpdatedAt: now})

	ada := s.users.insert(User{Email: "ada@example.com", PasswordHash: "demo", FirstName: "Ada", LastName: "Lovelace", Phone: "555-0100", Role: "ADMIN", IsActive: true, CreatedAt: now, UpdatedAt: now})
	s.orders.insert(Order{UserID: ada.UserID, OrderNumber: "ORD-1001", Status: "PENDING", TotalAmount: 64.49, OrderDate: now, Notes: "Gift wrap", CreatedAt: now, UpdatedAt: now})
}
