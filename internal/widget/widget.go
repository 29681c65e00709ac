// Package widget renders a family of UI controls through an abstract factory.
//
// A [Factory] creates one button and one checkbox. Both always belong to
// the factory's [Platform], so a Windows factory never yields a Mac-styled
// control. Widgets are templ components and render plain text lines.
package widget

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/creational/internal/core"
	"github.com/JonMunkholm/creational/internal/logging"
)

// Platform names a widget family.
type Platform string

const (
	Windows Platform = "Windows"
	Mac     Platform = "Mac"
)

// Button is a clickable control.
type Button interface {
	templ.Component
	Platform() Platform
}

// Checkbox is a toggle control.
type Checkbox interface {
	templ.Component
	Platform() Platform
}

// Factory creates controls of a single platform.
type Factory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
}

var platforms = core.NewRegistry("platform",
	core.Entry[Factory]{Key: "windows", New: func() Factory { return WindowsFactory{} }},
	core.Entry[Factory]{Key: "mac", New: func() Factory { return MacFactory{} }},
)

// Platforms returns the accepted platform selections.
func Platforms() []string {
	return platforms.Keys()
}

// ForPlatform returns the factory for a platform selection such as "windows".
func ForPlatform(selection string) (Factory, error) {
	return platforms.Lookup(selection)
}

// Render draws the factory's button followed by its checkbox.
func Render(ctx context.Context, w io.Writer, f Factory) error {
	return templ.Join(f.CreateButton(), f.CreateCheckbox()).Render(ctx, w)
}

// Run selects a factory and renders its controls.
func Run(ctx context.Context, selection string, w io.Writer) error {
	f, err := ForPlatform(selection)
	if err != nil {
		return err
	}

	logging.FromContext(ctx).Info("platform selected", "platform", core.Normalize(selection))

	if err := Render(ctx, w, f); err != nil {
		return fmt.Errorf("render widgets: %w", err)
	}
	return nil
}

// control is the text rendering shared by every widget.
type control struct {
	kind     string
	platform Platform
}

func (c control) Platform() Platform { return c.platform }

func (c control) Render(_ context.Context, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Rendering a %s in %s style.\n", c.kind, c.platform)
	return err
}
