// Package stack holds calculator stack items, the ordered store they live
// in, and the diff used to keep a rendered list in step with the store.
package stack

import (
	"slices"

	"github.com/google/uuid"
)

// ID identifies one item instance. Two items with equal content created
// separately have different IDs.
type ID uuid.UUID

func (id ID) String() string { return uuid.UUID(id).String() }

func newID() ID { return ID(uuid.New()) }

// OutputType tags the kind of value an item holds. The values are defined
// by the calculation engine and are opaque to this package.
type OutputType uint8

// Item is one finalized stack entry: the input fragments that produced a
// value and the value itself. Items are immutable; build them with a Builder.
type Item struct {
	id            ID
	input         []string
	output        string
	outputType    OutputType
	accessibility string
}

// NewItem builds a finalized item in one step.
func NewItem(input []string, output string, typ OutputType, accessibility string) Item {
	b := NewBuilder()
	for _, in := range input {
		b.Append(in)
	}
	return b.Finish(output, typ, accessibility)
}

func (it Item) ID() ID { return it.id }

// Input returns a copy of the input fragments in entry order.
func (it Item) Input() []string { return slices.Clone(it.input) }

func (it Item) Output() string { return it.output }

func (it Item) OutputType() OutputType { return it.outputType }

// AccessibilityLabel is the fixed spoken label of every stack entry.
func (it Item) AccessibilityLabel() string { return "Stack Value" }

// AccessibilityValue is the spoken form of the output.
func (it Item) AccessibilityValue() string { return it.accessibility }

// Equal compares content only; identity is ignored.
func (it Item) Equal(o Item) bool {
	return it.output == o.output && slices.Equal(it.input, o.input)
}

// Builder assembles an item fragment by fragment, the way the engine
// reports it: start, append each input fragment, then finish with the
// result. A Builder can be reused after Finish.
type Builder struct {
	input []string
}

// NewBuilder starts an empty item.
func NewBuilder() *Builder { return &Builder{} }

// Append adds one input fragment.
func (b *Builder) Append(fragment string) *Builder {
	b.input = append(b.input, fragment)
	return b
}

// Len is the number of fragments appended so far.
func (b *Builder) Len() int { return len(b.input) }

// Finish seals the item with its result and a fresh identity, and resets
// the builder.
func (b *Builder) Finish(output string, typ OutputType, accessibility string) Item {
	it := Item{
		id:            newID(),
		input:         b.input,
		output:        output,
		outputType:    typ,
		accessibility: accessibility,
	}
	b.input = nil
	return it
}

// Duplicate returns a new item with the same content and a new identity.
func (it Item) Duplicate() Item {
	dup := it
	dup.id = newID()
	dup.input = slices.Clone(it.input)
	return dup
}
