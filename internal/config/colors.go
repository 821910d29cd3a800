package config

import (
	"fmt"

	"github.com/derailed/tcell/v2"
)

// Color represents a color in the application
type Color string

const (
	// DefaultColor represents a default color
	DefaultColor Color = "default"

	// TransparentColor represents the terminal bg color
	TransparentColor Color = "-"
)

// NewColor returns a new color
func NewColor(c string) Color {
	return Color(c)
}

// String returns color as string
func (c Color) String() string {
	if c.isHex() {
		return string(c)
	}
	if c == DefaultColor {
		return "-"
	}
	col := c.Color().TrueColor().Hex()
	if col < 0 {
		return "-"
	}
	return fmt.Sprintf("#%06x", col)
}

func (c Color) isHex() bool {
	return len(c) == 7 && c[0] == '#'
}

// Color returns a view color
func (c Color) Color() tcell.Color {
	if c == DefaultColor {
		return tcell.ColorDefault
	}
	return tcell.GetColor(string(c)).TrueColor()
}

// EmailColors defines colors for email list states
type EmailColors struct {
	UnreadColor   Color `yaml:"unreadColor"`
	ReadColor     Color `yaml:"readColor"`
	SelectedColor Color `yaml:"selectedColor"`
}

// UIColors defines colors for status and feedback messages
type UIColors struct {
	InfoColor    Color `yaml:"infoColor"`
	WarningColor Color `yaml:"warningColor"`
	ErrorColor   Color `yaml:"errorColor"`
	SuccessColor Color `yaml:"successColor"`
}

// FrameColors defines colors for borders and titles
type FrameColors struct {
	BorderColor Color `yaml:"borderColor"`
	FocusColor  Color `yaml:"focusColor"`
	TitleColor  Color `yaml:"titleColor"`
}

// ColorsConfig is the full theme definition
type ColorsConfig struct {
	Body struct {
		FgColor Color `yaml:"fgColor"`
		BgColor Color `yaml:"bgColor"`
	} `yaml:"body"`
	Frame FrameColors `yaml:"frame"`
	Email EmailColors `yaml:"email"`
	UI    UIColors    `yaml:"ui"`
}

// DefaultColors returns the built-in mailsift-dark theme
func DefaultColors() *ColorsConfig {
	cfg := &ColorsConfig{}
	cfg.Body.FgColor = NewColor("#cdd6f4")
	cfg.Body.BgColor = TransparentColor
	cfg.Frame = FrameColors{
		BorderColor: NewColor("#45475a"),
		FocusColor:  NewColor("#89b4fa"),
		TitleColor:  NewColor("#cdd6f4"),
	}
	cfg.Email = EmailColors{
		UnreadColor:   NewColor("orange"),
		ReadColor:     NewColor("gray"),
		SelectedColor: NewColor("#89b4fa"),
	}
	cfg.UI = UIColors{
		InfoColor:    NewColor("#89b4fa"),
		WarningColor: NewColor("yellow"),
		ErrorColor:   NewColor("red"),
		SuccessColor: NewColor("green"),
	}
	return cfg
}
