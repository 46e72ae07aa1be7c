package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/kittyconf/internal/catalog"
)

var (
	styleDefault  = tcell.StyleDefault
	styleTitle    = tcell.StyleDefault.Bold(true).Reverse(true)
	styleHeader   = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	styleChanged  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSelected = tcell.StyleDefault.Reverse(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEdit     = tcell.StyleDefault.Underline(true)
)

// keyColumn is the display width reserved for setting keys.
const keyColumn = 32

// Draw renders the whole screen.
func (e *Editor) Draw() {
	e.screen.Clear()
	w, h := e.screen.Size()

	changed := len(e.session.Store().ChangedEntries())
	title := fmt.Sprintf(" kittyconf  %d changed, %d mappings", changed, len(e.session.Mappings()))
	e.fill(0, w, styleTitle)
	e.put(0, 0, w, title, styleTitle)

	page := e.pageSize()
	for i := 0; i < page && e.offset+i < len(e.rows); i++ {
		e.drawRow(1+i, w, e.rows[e.offset+i], e.offset+i == e.cursor)
	}

	e.drawStatus(h-1, w)
	e.screen.Show()
}

func (e *Editor) drawRow(y, w int, r row, selected bool) {
	if r.setting == nil {
		e.put(0, y, w, r.header, styleHeader)
		return
	}

	s := r.setting
	value := e.session.Store().Get(s.Key)
	style := styleDefault
	if e.session.Store().IsChanged(s.Key) {
		style = styleChanged
	}
	if selected {
		style = styleSelected
		if e.mode == modeEdit {
			value = string(e.input)
		}
	}
	if s.Type == catalog.TypeFile && value != s.Default {
		if name := e.session.Store().FileName(s.Key); name != "" {
			value = name
		} else {
			value = "(embedded)"
		}
	}

	x := e.put(2, y, keyColumn, s.Key, style)
	for ; x < 2+keyColumn; x++ {
		e.screen.SetContent(x, y, ' ', nil, style)
	}

	if s.Type == catalog.TypeColor {
		if c, err := catalog.ParseColor(value); err == nil {
			r, g, b := c.Clamped().RGB255()
			swatch := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			e.screen.SetContent(x, y, ' ', nil, swatch)
			e.screen.SetContent(x+1, y, ' ', nil, swatch)
		}
		x += 3
	}

	valueStyle := style
	if selected && e.mode == modeEdit {
		valueStyle = styleEdit
	}
	end := e.put(x, y, w-x, value, valueStyle)
	if selected && e.mode == modeEdit {
		e.screen.ShowCursor(end, y)
	}
}

func (e *Editor) drawStatus(y, w int) {
	e.screen.HideCursor()

	var text string
	switch {
	case e.mode == modeFilter:
		text = "/" + string(e.input)
		e.screen.ShowCursor(runewidth.StringWidth(text), y)
	case e.status != "":
		text = e.status
	default:
		if s := e.selected(); s != nil {
			text = fmt.Sprintf("%s (%s, default %s)", s.Label, s.Type, s.Default)
			if len(s.Options) > 0 {
				text += "  ←/→ to change"
			}
		}
	}
	e.put(0, y, w, text, styleStatus)
}

// put writes text at x,y clipped to width display cells and returns the x
// after the last cell written.
func (e *Editor) put(x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return x
	}
	text = runewidth.Truncate(text, width, "…")
	for _, r := range text {
		e.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (e *Editor) fill(y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		e.screen.SetContent(x, y, ' ', nil, style)
	}
}
