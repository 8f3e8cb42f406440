package board

// Lines returns, for every row (horizontal moves) or column (vertical moves),
// the flattened cell indices in traversal order. The first index of each line
// is its anchor: the cell tiles slide toward.
func Lines(dir Direction, height, width int) [][]int {
	switch dir {
	case DirLeft, DirRight:
		lines := make([][]int, height)
		for row := range height {
			line := make([]int, width)
			for i := range width {
				col := i
				if dir == DirRight {
					col = width - 1 - i
				}
				line[i] = col + row*width
			}
			lines[row] = line
		}
		return lines

	case DirUp, DirDown:
		lines := make([][]int, width)
		for col := range width {
			line := make([]int, height)
			for i := range height {
				row := i
				if dir == DirDown {
					row = height - 1 - i
				}
				line[i] = col + row*width
			}
			lines[col] = line
		}
		return lines

	default:
		return nil
	}
}
