package cli

import (
	"github.com/fatih/color"

	"github.com/JonMunkholm/creational/internal/coffee"
	"github.com/JonMunkholm/creational/internal/computer"
	"github.com/JonMunkholm/creational/internal/display"
	"github.com/JonMunkholm/creational/internal/notify"
	"github.com/JonMunkholm/creational/internal/widget"
)

// Widgets renders a platform's button and checkbox.
func Widgets() Program {
	return Program{
		Use:     "widgets",
		Short:   "Render a family of UI widgets (abstract factory)",
		Prompt:  "Enter platform",
		Choices: widget.Platforms(),
		Policy:  AbortOnFailure,
		Run:     widget.Run,
	}
}

// Notify sends a notification through the selected channel.
func Notify() Program {
	return Program{
		Use:     "notify",
		Short:   "Send a notification (factory method)",
		Prompt:  "Enter notification type",
		Choices: notify.Types(),
		Policy:  ReportOnFailure,
		Style:   &display.Style{Foreground: color.FgGreen, Title: "Notification Service"},
		Run:     notify.Run,
	}
}

// Coffee serves the selected drink.
func Coffee() Program {
	return Program{
		Use:     "coffee",
		Short:   "Serve a coffee (factory method)",
		Prompt:  "Enter coffee type",
		Choices: coffee.Types(),
		Policy:  ReportOnFailure,
		Style:   &display.Style{Foreground: color.FgYellow, Title: "Coffee Shop"},
		Run:     coffee.Run,
	}
}

// Computer assembles and prints a computer configuration.
func Computer() Program {
	return Program{
		Use:     "computer",
		Short:   "Assemble a computer (builder)",
		Prompt:  "Enter computer type",
		Choices: computer.Types(),
		Policy:  AbortOnFailure,
		Run:     computer.Run,
	}
}
