package termui

// SelectableList is a cursor-driven list of items with optional per-item
// actions, an optional post-selection hook, and an optional multi-select
// mode with per-item checkboxes. Items are addressed by index; duplicate
// content is allowed.
type SelectableList struct {
	items       []string
	actions     []func()
	selected    []bool
	cursor      int
	multiSelect bool
	onSelect    func(index int, item string)
	normalStyle Style
	cursorStyle Style
}

// NewSelectableList returns an empty list whose cursor row renders in
// reverse video.
func NewSelectableList() *SelectableList {
	return &SelectableList{cursorStyle: Style{}.Reversed()}
}

// AddItem appends an item. action may be nil; when set it fires on Enter
// before the list-level OnSelect hook.
func (l *SelectableList) AddItem(item string, action func()) *SelectableList {
	l.items = append(l.items, item)
	l.actions = append(l.actions, action)
	l.selected = append(l.selected, false)
	return l
}

// SetOnSelect registers a hook called on every Enter, after the item's own
// action. Use per-item actions for specific behaviour and this hook for
// cross-cutting concerns (dismiss a status bar, refresh a sibling page).
func (l *SelectableList) SetOnSelect(cb func(index int, item string)) *SelectableList {
	l.onSelect = cb
	return l
}

// SetNormalStyle sets the style of non-cursor rows.
func (l *SelectableList) SetNormalStyle(s Style) *SelectableList {
	l.normalStyle = s
	return l
}

// SetCursorStyle sets the style of the cursor row.
func (l *SelectableList) SetCursorStyle(s Style) *SelectableList {
	l.cursorStyle = s
	return l
}

// SetMultiSelect enables or disables multi-select mode.
func (l *SelectableList) SetMultiSelect(enabled bool) *SelectableList {
	l.multiSelect = enabled
	return l
}

// MultiSelect reports whether multi-select mode is enabled.
func (l *SelectableList) MultiSelect() bool {
	return l.multiSelect
}

// Cursor returns the index of the cursor row.
func (l *SelectableList) Cursor() int {
	return l.cursor
}

// Len returns the number of items.
func (l *SelectableList) Len() int {
	return len(l.items)
}

// Item returns the item text at index, or "" if index is out of range.
func (l *SelectableList) Item(index int) string {
	if index < 0 || index >= len(l.items) {
		return ""
	}
	return l.items[index]
}

// SelectedItem returns the item under the cursor, or "" for an empty list.
func (l *SelectableList) SelectedItem() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.cursor]
}

// SelectedItems returns the checked items in insertion order, regardless of
// the order they were toggled in.
func (l *SelectableList) SelectedItems() []string {
	var result []string
	for i, item := range l.items {
		if l.selected[i] {
			result = append(result, item)
		}
	}
	return result
}

// ClearSelection unchecks every item.
func (l *SelectableList) ClearSelection() {
	for i := range l.selected {
		l.selected[i] = false
	}
}

// ClearItems removes all items, resets the cursor and selection state, and
// restores the default styles and hooks.
func (l *SelectableList) ClearItems() *SelectableList {
	l.items = nil
	l.actions = nil
	l.selected = nil
	l.cursor = 0
	l.onSelect = nil
	l.normalStyle = Style{}
	l.cursorStyle = Style{}.Reversed()
	return l
}

// HandleKey applies one key event to the list. It reports whether the list
// consumed the key and its display state may have changed; unconsumed keys
// fall through to the caller's list-independent handling. Enter always
// reports a change, since actions may have mutated external state.
func (l *SelectableList) HandleKey(key Key) bool {
	if len(l.items) == 0 {
		return false
	}
	switch key {
	case KeyUp:
		if l.cursor > 0 {
			l.cursor--
			return true
		}
		return false
	case KeyDown:
		if l.cursor+1 < len(l.items) {
			l.cursor++
			return true
		}
		return false
	case KeyEnter:
		if action := l.actions[l.cursor]; action != nil {
			action()
		}
		if l.onSelect != nil {
			l.onSelect(l.cursor, l.items[l.cursor])
		}
		return true
	case KeySpace:
		if l.multiSelect {
			l.selected[l.cursor] = !l.selected[l.cursor]
			return true
		}
		return false
	}
	return false
}

// Render produces one Text per item, truncated to width display columns.
// The cursor row carries a "> " marker and the cursor style. In
// multi-select mode a fixed four-column "[x] "/"[ ] " checkbox segment sits
// between the marker and the item text; the checkbox itself is never
// truncated, only the item text is.
func (l *SelectableList) Render(width int) []Text {
	lines := make([]Text, 0, len(l.items))
	for i, item := range l.items {
		isCursor := i == l.cursor
		st := l.normalStyle
		if isCursor {
			st = l.cursorStyle
		}

		if l.multiSelect {
			cursorMark := "  "
			if isCursor {
				cursorMark = "> "
			}
			checkbox := "[ ] "
			if l.selected[i] {
				checkbox = "[x] "
			}
			const prefixWidth = 6 // "> " (2) + "[x] " (4)
			if width > prefixWidth {
				if avail := width - prefixWidth; DisplayWidth(item) > avail {
					item = Truncate(item, avail)
				}
			}
			lines = append(lines, Styled(cursorMark, st).
				Add(checkbox, NewStyle(BrightBlack)).
				Add(item, st))
			continue
		}

		content := "  " + item
		if isCursor {
			content = "> " + item
		}
		if width > 0 && DisplayWidth(content) > width {
			content = Truncate(content, width)
		}
		lines = append(lines, Styled(content, st))
	}
	return lines
}
