package symtab

import (
	"sort"
	"strings"
)

// Scope is a single symbol table: an ordered mapping from lowercase names to
// the symbols declared in one lexical region.
type Scope struct {
	// The nesting level of the scope: 0 holds the predefined identifiers and 1
	// is the global scope of the program.
	NestingLevel int

	// The symbol owning the scope: the program or routine whose body it
	// represents.
	Owner *Symbol

	entries map[string]*Symbol
	order   []*Symbol

	// The next slot to hand out.
	slot int
}

// NewScope creates a new empty scope at the given nesting level.
func NewScope(nestingLevel int) *Scope {
	return &Scope{
		NestingLevel: nestingLevel,
		entries:      make(map[string]*Symbol),
	}
}

// Enter creates and inserts a new symbol with the given name and kind.  If a
// symbol with the same name is already present, it is returned unchanged:
// callers are expected to check for redeclaration first.
func (s *Scope) Enter(name string, kind Kind) *Symbol {
	key := strings.ToLower(name)
	if sym, ok := s.entries[key]; ok {
		return sym
	}

	sym := &Symbol{Name: name, Kind: kind, Scope: s, Slot: -1}
	s.entries[key] = sym
	s.order = append(s.order, sym)
	return sym
}

// insert adds an existing symbol to the scope without taking ownership of it.
func (s *Scope) insert(sym *Symbol) {
	key := strings.ToLower(sym.Name)
	if _, ok := s.entries[key]; !ok {
		s.entries[key] = sym
		s.order = append(s.order, sym)
	}
}

// Lookup returns the symbol declared in this scope with the given name.
func (s *Scope) Lookup(name string) (*Symbol, bool) {
	sym, ok := s.entries[strings.ToLower(name)]
	return sym, ok
}

// NextSlotNumber returns a fresh local variable slot.  Slots ascend from zero
// in the order they are requested.
func (s *Scope) NextSlotNumber() int {
	slot := s.slot
	s.slot++
	return slot
}

// ReserveSlots skips over n slots reserved for runtime bookkeeping.
func (s *Scope) ReserveSlots(n int) {
	s.slot += n
}

// SlotCount returns the number of slots handed out so far.
func (s *Scope) SlotCount() int {
	return s.slot
}

// Entries returns the symbols of the scope in declaration order.
func (s *Scope) Entries() []*Symbol {
	return s.order
}

// SortedEntries returns the symbols of the scope sorted by name.
func (s *Scope) SortedEntries() []*Symbol {
	sorted := make([]*Symbol, len(s.order))
	copy(sorted, s.order)

	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	return sorted
}
