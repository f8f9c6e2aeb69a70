package state

// Viewport windows a list of n entries into Rows visible lines.
// Cursor is the highlighted row inside the window and Offset the index of
// the first visible entry; Cursor+Offset is the selected entry.
type Viewport struct {
	Cursor int
	Offset int
	Rows   int
}

// NewViewport returns a viewport showing rows lines, at least one.
func NewViewport(rows int) Viewport {
	return Viewport{Rows: clampRows(rows)}
}

func clampRows(rows int) int {
	if rows < 1 {
		return 1
	}
	return rows
}

func (v *Viewport) lastRow() int {
	return clampRows(v.Rows) - 1
}

// Selected returns the absolute index of the highlighted entry.
func (v Viewport) Selected() int {
	return v.Cursor + v.Offset
}

// Reset moves the selection to the first entry.
func (v *Viewport) Reset() {
	v.Cursor = 0
	v.Offset = 0
}

// MoveDown selects the next entry, scrolling when the cursor would leave
// the window. It is a no-op on the last entry.
func (v *Viewport) MoveDown(n int) {
	if v.Selected() >= n-1 {
		return
	}
	v.Cursor++
	if last := v.lastRow(); v.Cursor > last {
		v.Cursor = last
		v.Offset++
	}
}

// MoveUp selects the previous entry, scrolling when the cursor would leave
// the window. It is a no-op on the first entry.
func (v *Viewport) MoveUp() {
	if v.Selected() <= 0 {
		return
	}
	v.Cursor--
	if v.Cursor < 0 {
		v.Cursor = 0
		v.Offset--
	}
}

// SetCursor selects target in a list of n entries. Targets on the first
// page keep the window at the top, targets on the last page pin the window
// to the bottom of the list, anything else is centred. Out-of-range targets
// leave the viewport unchanged.
func (v *Viewport) SetCursor(target, n int) {
	last := n - 1
	if target < 0 || target > last {
		return
	}

	rows := clampRows(v.Rows)
	lastRow := rows - 1

	if target <= lastRow {
		v.Cursor = target
		v.Offset = 0
		return
	}

	if fromEnd := last - target; fromEnd <= lastRow {
		v.Cursor = lastRow - fromEnd
		v.Offset = target - v.Cursor
		return
	}

	v.Cursor = rows / 2
	rema := rows - v.Cursor
	v.Offset = target - rema
	if v.Cursor != rema {
		v.Offset++
	}
}

// Resize changes the number of visible rows while keeping the selected
// entry highlighted.
func (v *Viewport) Resize(rows, n int) {
	selected := v.Selected()
	v.Rows = clampRows(rows)
	v.Reset()
	if n <= 0 {
		return
	}
	if selected > n-1 {
		selected = n - 1
	}
	v.SetCursor(selected, n)
}

// End selects the last entry.
func (v *Viewport) End(n int) {
	v.SetCursor(n-1, n)
}

// PageDown moves the selection one window further, stopping at the end.
func (v *Viewport) PageDown(n int) {
	if n <= 0 {
		return
	}
	target := v.Selected() + clampRows(v.Rows)
	if target > n-1 {
		target = n - 1
	}
	v.SetCursor(target, n)
}

// PageUp moves the selection one window back, stopping at the start.
func (v *Viewport) PageUp(n int) {
	if n <= 0 {
		return
	}
	target := v.Selected() - clampRows(v.Rows)
	if target < 0 {
		target = 0
	}
	v.SetCursor(target, n)
}

// Window returns the bounds of the visible slice of a list of n entries.
// The start is clamped so the window never runs past the end of the list.
func (v Viewport) Window(n int) (start, end int) {
	if n <= 0 {
		return 0, 0
	}
	size := clampRows(v.Rows)
	if size > n {
		size = n
	}
	start = v.Offset
	if start > n-size {
		start = n - size
	}
	if start < 0 {
		start = 0
	}
	return start, start + size
}
