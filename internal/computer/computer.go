// Package computer assembles a computer configuration with a builder.
//
// A [Director] drives any [Builder] through the same five steps in a fixed
// order: CPU, GPU, RAM, storage, power supply. Steps that are never run
// leave their field empty.
package computer

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/creational/internal/core"
	"github.com/JonMunkholm/creational/internal/logging"
)

// Computer is a finished configuration. It is a value; callers get a copy.
type Computer struct {
	CPU         string
	GPU         string
	RAM         string
	Storage     string
	PowerSupply string
}

// String returns a one-line summary.
func (c Computer) String() string {
	return fmt.Sprintf("CPU=%s, GPU=%s, RAM=%s, Storage=%s, PowerSupply=%s",
		c.CPU, c.GPU, c.RAM, c.Storage, c.PowerSupply)
}

// WriteTo prints the configuration, one component per line.
func (c Computer) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"Computer configuration:\n  CPU: %s\n  GPU: %s\n  RAM: %s\n  Storage: %s\n  Power supply: %s\n",
		c.CPU, c.GPU, c.RAM, c.Storage, c.PowerSupply)
	return int64(n), err
}

// Builder sets one component per step.
type Builder interface {
	SetCPU()
	SetGPU()
	SetRAM()
	SetStorage()
	SetPowerSupply()
	Computer() Computer
}

// Director runs a builder's steps in the fixed order.
type Director struct{}

// Construct runs every step on b and returns the result.
func (Director) Construct(b Builder) Computer {
	b.SetCPU()
	b.SetGPU()
	b.SetRAM()
	b.SetStorage()
	b.SetPowerSupply()
	return b.Computer()
}

var builders = core.NewRegistry("computer type",
	core.Entry[Builder]{Key: "gaming", New: func() Builder { return NewGamingBuilder() }},
	core.Entry[Builder]{Key: "office", New: func() Builder { return NewOfficeBuilder() }},
)

// Types returns the accepted computer type selections.
func Types() []string {
	return builders.Keys()
}

// ForType returns a fresh builder for a selection such as "gaming".
func ForType(selection string) (Builder, error) {
	return builders.Lookup(selection)
}

// Build selects a builder and constructs its computer.
func Build(selection string) (Computer, error) {
	b, err := ForType(selection)
	if err != nil {
		return Computer{}, err
	}
	return Director{}.Construct(b), nil
}

// Run builds the selected computer and prints it.
func Run(ctx context.Context, selection string, w io.Writer) error {
	c, err := Build(selection)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("computer built", "type", core.Normalize(selection), "components", c.String())

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("print computer: %w", err)
	}
	return nil
}
