package widget

// WindowsFactory creates Windows-styled controls.
type WindowsFactory struct{}

func (WindowsFactory) CreateButton() Button     { return WindowsButton{control{kind: "button", platform: Windows}} }
func (WindowsFactory) CreateCheckbox() Checkbox { return WindowsCheckbox{control{kind: "checkbox", platform: Windows}} }

type WindowsButton struct{ control }

type WindowsCheckbox struct{ control }

// MacFactory creates Mac-styled controls.
type MacFactory struct{}

func (MacFactory) CreateButton() Button     { return MacButton{control{kind: "button", platform: Mac}} }
func (MacFactory) CreateCheckbox() Checkbox { return MacCheckbox{control{kind: "checkbox", platform: Mac}} }

type MacButton struct{ control }

type MacCheckbox struct{ control }
