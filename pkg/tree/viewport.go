package tree

// ScrollOffset returns the corrected offset of the first rendered row so the
// selection stays on screen with minimal movement. total is the visible-row
// count, selected the zero-based row index of the selection (negative when
// nothing is selected), offset the current value, and height the rows
// available in the viewport.
//
// A selection above the window scrolls up to put it on the first line; one
// below scrolls down to put it on the last line; otherwise the offset is
// unchanged. The result is always clamped to [0, max(0, total-height)] so a
// shrinking list (e.g. after a collapse) cannot leave the viewport past the
// end. Pure function: identical inputs give identical outputs.
func ScrollOffset(total, selected, offset, height int) int {
	if height <= 0 {
		return 0
	}
	if selected >= 0 {
		if selected < offset {
			offset = selected
		} else if selected >= offset+height {
			offset = selected - height + 1
		}
	}
	max := total - height
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
