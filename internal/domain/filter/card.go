package filter

import (
	"errors"
	"sync"
)

var (
	ErrUnknownOption = errors.New("unknown filter option")
	ErrNotMounted    = errors.New("filter card not mounted")
)

// Card holds the currently selected filter value. It publishes the value
// once on Mount and then once per actual change of selection.
type Card struct {
	mu       sync.Mutex
	pub      Publisher
	selected string
	mounted  bool
}

func NewCard(pub Publisher) *Card {
	return &Card{pub: pub}
}

func (c *Card) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Mount publishes the initial (empty) selection. Calling it again is a no-op.
func (c *Card) Mount() {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	value := c.selected
	c.mu.Unlock()

	c.publish(value)
}

// Select changes the selection. Re-selecting the current value publishes
// nothing.
func (c *Card) Select(value string) error {
	if !IsOption(value) {
		return ErrUnknownOption
	}

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return ErrNotMounted
	}
	if c.selected == value {
		c.mu.Unlock()
		return nil
	}
	c.selected = value
	c.mu.Unlock()

	c.publish(value)
	return nil
}

func (c *Card) publish(value string) {
	if c.pub == nil {
		return
	}
	c.pub.Dispatch(SetSearchedQuery{Query: value})
}
