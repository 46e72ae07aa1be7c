// Package keymap provides kitty key mappings and the catalog of mappable
// actions.
//
// Every catalog action carries a stable numeric id used by the share codec,
// the same way settings do. Mappings to actions outside the catalog are
// allowed; they are written to kitty.conf verbatim.
package keymap

// Action describes one kitty action that can be bound to keys.
type Action struct {
	// ID is the stable numeric id used for compact encoding.
	ID int

	// Value is the kitty action name (e.g., "copy_to_clipboard").
	Value string

	// Label is the human-readable name.
	Label string

	// Hint is an example argument string, empty when the action takes none.
	Hint string
}

// ActionGroup groups actions for display.
type ActionGroup struct {
	Label   string
	Actions []Action
}

var actionGroups = []ActionGroup{
	{
		Label: "Clipboard",
		Actions: []Action{
			{ID: 1, Value: "copy_to_clipboard", Label: "Copy to clipboard"},
			{ID: 2, Value: "copy_or_interrupt", Label: "Copy or interrupt"},
			{ID: 3, Value: "paste_from_clipboard", Label: "Paste from clipboard"},
			{ID: 4, Value: "paste_from_selection", Label: "Paste from selection"},
			{ID: 5, Value: "copy_and_clear_or_interrupt", Label: "Copy+clear or interrupt"},
		},
	},
	{
		Label: "Scrolling",
		Actions: []Action{
			{ID: 6, Value: "scroll_line_up", Label: "Scroll line up"},
			{ID: 7, Value: "scroll_line_down", Label: "Scroll line down"},
			{ID: 8, Value: "scroll_page_up", Label: "Scroll page up"},
			{ID: 9, Value: "scroll_page_down", Label: "Scroll page down"},
			{ID: 10, Value: "scroll_home", Label: "Scroll home"},
			{ID: 11, Value: "scroll_end", Label: "Scroll end"},
			{ID: 12, Value: "show_scrollback", Label: "Show scrollback"},
		},
	},
	{
		Label: "Window",
		Actions: []Action{
			{ID: 13, Value: "new_window", Label: "New window"},
			{ID: 14, Value: "close_window", Label: "Close window"},
			{ID: 15, Value: "next_window", Label: "Next window"},
			{ID: 16, Value: "previous_window", Label: "Previous window"},
			{ID: 17, Value: "move_window_forward", Label: "Move window forward"},
			{ID: 18, Value: "move_window_backward", Label: "Move window backward"},
			{ID: 19, Value: "start_resizing_window", Label: "Resize window"},
		},
	},
	{
		Label: "Tab",
		Actions: []Action{
			{ID: 20, Value: "new_tab", Label: "New tab"},
			{ID: 21, Value: "close_tab", Label: "Close tab"},
			{ID: 22, Value: "next_tab", Label: "Next tab"},
			{ID: 23, Value: "previous_tab", Label: "Previous tab"},
			{ID: 24, Value: "move_tab_forward", Label: "Move tab forward"},
			{ID: 25, Value: "move_tab_backward", Label: "Move tab backward"},
			{ID: 26, Value: "goto_tab", Label: "Go to tab", Hint: "1"},
			{ID: 27, Value: "set_tab_title", Label: "Set tab title"},
		},
	},
	{
		Label: "Layout",
		Actions: []Action{
			{ID: 28, Value: "next_layout", Label: "Next layout"},
			{ID: 29, Value: "goto_layout", Label: "Go to layout", Hint: "tall"},
			{ID: 30, Value: "toggle_layout", Label: "Toggle layout", Hint: "stack"},
		},
	},
	{
		Label: "Font Size",
		Actions: []Action{
			{ID: 31, Value: "change_font_size", Label: "Change font size", Hint: "all +2.0"},
		},
	},
	{
		Label: "Misc",
		Actions: []Action{
			{ID: 32, Value: "send_text", Label: "Send text", Hint: `all \x1b`},
			{ID: 33, Value: "clear_terminal", Label: "Clear terminal", Hint: "reset active"},
			{ID: 34, Value: "load_config_file", Label: "Reload config"},
			{ID: 35, Value: "edit_config_file", Label: "Edit config"},
			{ID: 36, Value: "toggle_fullscreen", Label: "Toggle fullscreen"},
			{ID: 37, Value: "toggle_maximized", Label: "Toggle maximized"},
			{ID: 38, Value: "open_url_with_hints", Label: "Open URL with hints"},
			{ID: 39, Value: "input_unicode_character", Label: "Input Unicode character"},
			{ID: 40, Value: "quit", Label: "Quit"},
		},
	},
}

var (
	actionsByID    = make(map[int]Action)
	actionsByValue = make(map[string]Action)
)

func init() {
	for _, g := range actionGroups {
		for _, a := range g.Actions {
			if _, dup := actionsByID[a.ID]; dup {
				panic("keymap: duplicate action id")
			}
			actionsByID[a.ID] = a
			actionsByValue[a.Value] = a
		}
	}
}

// Groups returns the action groups in display order.
func Groups() []ActionGroup {
	result := make([]ActionGroup, len(actionGroups))
	copy(result, actionGroups)
	return result
}

// ActionByID returns the action with the given numeric id.
func ActionByID(id int) (Action, bool) {
	a, ok := actionsByID[id]
	return a, ok
}

// Lookup returns the catalog entry for an action name.
func Lookup(value string) (Action, bool) {
	a, ok := actionsByValue[value]
	return a, ok
}

// Hint returns the example arguments for an action, or "".
func Hint(value string) string {
	return actionsByValue[value].Hint
}
