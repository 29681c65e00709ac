// Package coffee serves a drink made by a factory method.
package coffee

import (
	"context"
	"fmt"
	"io"

	"github.com/JonMunkholm/creational/internal/core"
	"github.com/JonMunkholm/creational/internal/logging"
)

// Coffee is a drink that can be served.
type Coffee interface {
	Name() string
	Serve(w io.Writer) error
}

// Maker is the factory method for one kind of coffee.
type Maker interface {
	MakeCoffee() Coffee
}

var makers = core.NewRegistry("coffee type",
	core.Entry[Maker]{Key: "espresso", New: func() Maker { return EspressoMaker{} }},
	core.Entry[Maker]{Key: "latte", New: func() Maker { return LatteMaker{} }},
)

// Types returns the accepted coffee selections.
func Types() []string {
	return makers.Keys()
}

// ForType returns the maker for a selection such as "latte".
func ForType(selection string) (Maker, error) {
	return makers.Lookup(selection)
}

// Brew makes a coffee with m and serves it.
func Brew(w io.Writer, m Maker) error {
	return m.MakeCoffee().Serve(w)
}

// Run selects a maker and serves its coffee.
func Run(ctx context.Context, selection string, w io.Writer) error {
	m, err := ForType(selection)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("coffee type selected", "type", core.Normalize(selection))

	if err := Brew(w, m); err != nil {
		return fmt.Errorf("serve coffee: %w", err)
	}
	return nil
}

type EspressoMaker struct{}

func (EspressoMaker) MakeCoffee() Coffee { return Espresso{} }

type Espresso struct{}

func (Espresso) Name() string { return "Espresso" }

func (Espresso) Serve(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Serving a strong, concentrated espresso.")
	return err
}

type LatteMaker struct{}

func (LatteMaker) MakeCoffee() Coffee { return Latte{} }

type Latte struct{}

func (Latte) Name() string { return "Latte" }

func (Latte) Serve(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Serving a creamy latte with steamed milk.")
	return err
}
