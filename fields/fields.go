// Package fields orders rendered fact lines by their configured priority.
package fields

import (
	"errors"
	"fmt"
	"slices"
)

// Category identifies one line of the info block.
type Category int

const (
	OS Category = iota
	Host
	Terminal
	Shell
	Kernel
	Uptime
	LoadAverage
	RAM
	Swap
	Locale
)

// Categories lists every category in default display order.
var Categories = []Category{OS, Host, Terminal, Shell, Kernel, Uptime, LoadAverage, RAM, Swap, Locale}

var labels = [...]string{
	OS:          "OS",
	Host:        "Host",
	Terminal:    "Terminal",
	Shell:       "Shell",
	Kernel:      "Kernel",
	Uptime:      "Uptime",
	LoadAverage: "Load Average",
	RAM:         "RAM",
	Swap:        "Swap",
	Locale:      "Locale",
}

// String returns the display label of the category.
func (c Category) String() string {
	if c >= 0 && int(c) < len(labels) {
		return labels[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ErrDuplicate is returned by Add when a category is added twice.
var ErrDuplicate = errors.New("duplicate field category")

// Line is a rendered line with its display priority. Order 0 hides it.
type Line struct {
	Category Category
	Order    uint8
	Text     string
}

// Assembler collects lines in insertion order.
type Assembler struct {
	lines []Line
	seen  map[Category]bool
}

// Add records text for category c at priority order.
func (a *Assembler) Add(c Category, order uint8, text string) error {
	if a.seen == nil {
		a.seen = make(map[Category]bool)
	}
	if a.seen[c] {
		return fmt.Errorf("%w: %s", ErrDuplicate, c)
	}
	a.seen[c] = true
	a.lines = append(a.lines, Line{Category: c, Order: order, Text: text})
	return nil
}

// Len returns the number of lines added, hidden ones included.
func (a *Assembler) Len() int { return len(a.lines) }

// Lines drops hidden lines and returns the rest sorted by ascending order.
// Lines sharing a priority keep their insertion order.
func (a *Assembler) Lines() []string {
	return Assemble(a.lines)
}

// Assemble drops lines with order 0 and stable-sorts the remainder by
// ascending order. The input slice is not modified.
func Assemble(lines []Line) []string {
	visible := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Order > 0 {
			visible = append(visible, l)
		}
	}

	slices.SortStableFunc(visible, func(a, b Line) int {
		return int(a.Order) - int(b.Order)
	})

	out := make([]string, len(visible))
	for i, l := range visible {
		out[i] = l.Text
	}
	return out
}
