package encode

import (
	"strings"

	"github.com/mcscan/biomefind/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	for _, t := range []ir.Type{ir.ByteType, ir.ShortType, ir.IntType, ir.LongType, ir.FloatType, ir.DoubleType} {
		able.Type = t
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	for _, t := range []ir.Type{ir.ByteArrayType, ir.IntArrayType, ir.LongArrayType} {
		able.Type = t
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able.Type = ir.EndType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ir.CompoundType
	colors.Map[able] = color.CyanString
	able.Attr = FieldColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Type = ir.ListType
	able.Attr = ValueColor
	colors.Map[able] = color.CyanString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
