package main

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	EqualColor ColorAttr = iota
	InsertColor
	DeleteColor
	NameColor
	DescColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			EqualColor:  color.RGB(96, 96, 96).SprintfFunc(),
			InsertColor: color.RGB(8, 196, 16).SprintfFunc(),
			DeleteColor: color.RGB(196, 32, 32).SprintfFunc(),
			NameColor:   color.RGB(128, 168, 196).SprintfFunc(),
			DescColor:   color.RGB(74, 92, 138).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s with attribute a. A nil Colors leaves s as is.
func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}
