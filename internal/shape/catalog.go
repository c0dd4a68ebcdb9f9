package shape

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/zjrosen/areacalc/internal/log"
)

var (
	// ErrNotFound is returned by Get for an index outside 1..Size().
	ErrNotFound = errors.New("shape not found")
	// ErrDuplicate is returned by Register when the name is already taken.
	ErrDuplicate = errors.New("shape already registered")
	// ErrInvalidDefinition is returned by Register for malformed definitions.
	ErrInvalidDefinition = errors.New("invalid shape definition")
)

// Entry is one menu line: a 1-based index and a display name.
type Entry struct {
	Index int
	Name  string
}

// Registry is the read side of the catalog plus append-only registration.
// Implementations must be safe for concurrent access.
type Registry interface {
	// List returns the menu entries in catalog order.
	List() []Entry

	// Get resolves a 1-based menu index. Returns ErrNotFound when index is
	// outside 1..Size().
	Get(index int) (Definition, error)

	// Size returns the number of registered shapes.
	Size() int

	// Register appends a definition. Entries are never removed or reordered.
	Register(def Definition) error
}

// Catalog is an ordered, append-only in-memory Registry.
type Catalog struct {
	mu     sync.RWMutex
	defs   []Definition
	byName map[string]int
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		byName: make(map[string]int),
	}
}

// Default returns a fresh catalog holding the built-in shapes in menu order.
func Default() *Catalog {
	c := NewCatalog()
	for _, def := range Builtins() {
		if err := c.Register(def); err != nil {
			// Builtins are compiled in; a failure here is a programming error.
			panic(err)
		}
	}
	return c
}

// Register appends def to the catalog.
func (c *Catalog) Register(def Definition) error {
	if err := validateDefinition(def); err != nil {
		return err
	}

	key := strings.ToLower(strings.TrimSpace(def.Name))

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byName[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, def.Name)
	}
	c.byName[key] = len(c.defs)
	c.defs = append(c.defs, def.clone())

	log.Debug(log.CatShape, "registered shape", "name", def.Name, "index", len(c.defs), "arity", def.Arity())
	return nil
}

// List returns the menu entries in catalog order.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entries := make([]Entry, len(c.defs))
	for i, def := range c.defs {
		entries[i] = Entry{Index: i + 1, Name: def.Name}
	}
	return entries
}

// Get resolves a 1-based menu index.
func (c *Catalog) Get(index int) (Definition, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 1 || index > len(c.defs) {
		return Definition{}, fmt.Errorf("%w: index %d (valid 1..%d)", ErrNotFound, index, len(c.defs))
	}
	return c.defs[index-1].clone(), nil
}

// Size returns the number of registered shapes.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs)
}

// Definitions returns copies of every definition in catalog order.
func (c *Catalog) Definitions() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Definition, len(c.defs))
	for i, def := range c.defs {
		out[i] = def.clone()
	}
	return out
}

func validateDefinition(def Definition) error {
	if strings.TrimSpace(def.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if def.Formula == nil {
		return fmt.Errorf("%w: %s: formula is required", ErrInvalidDefinition, def.Name)
	}
	if len(def.Params) == 0 {
		return fmt.Errorf("%w: %s: at least one parameter is required", ErrInvalidDefinition, def.Name)
	}
	for i, p := range def.Params {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: %s: parameter %d: name is required", ErrInvalidDefinition, def.Name, i)
		}
		switch p.Kind {
		case Positive:
		case IntAtLeast:
			if p.Min < 1 {
				return fmt.Errorf("%w: %s: parameter %q: minimum must be at least 1", ErrInvalidDefinition, def.Name, p.Name)
			}
		default:
			return fmt.Errorf("%w: %s: parameter %q: unknown kind %d", ErrInvalidDefinition, def.Name, p.Name, p.Kind)
		}
	}
	return nil
}

var _ Registry = (*Catalog)(nil)
