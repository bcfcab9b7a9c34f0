package paginate

// DefaultWindowWidth is how many page buttons the navigation strip shows.
const DefaultWindowWidth = 5

// Page returns the 1-based page num of items, clipped to bounds.
// A page past the end is an empty slice, never an error.
func Page[T any](items []T, size, num int) []T {
	if size <= 0 || num <= 0 {
		return nil
	}
	start := (num - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(n/size); 0 when there are no items.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Clamp forces a requested page number into [1, max(total,1)].
func Clamp(num, total int) int {
	if total < 1 {
		total = 1
	}
	if num < 1 {
		return 1
	}
	if num > total {
		return total
	}
	return num
}

// Window is the sliding strip of directly clickable page numbers.
// GapBefore/GapAfter signal an ellipsis between the strip and the
// first/last page, which are always reachable on their own.
type Window struct {
	Pages     []int
	GapBefore bool
	GapAfter  bool
}

// WindowAround computes a strip of up to width pages centered on current,
// extended toward whichever boundary has room when near an edge.
func WindowAround(current, total, width int) Window {
	if total <= 0 {
		return Window{}
	}
	if width <= 0 {
		width = DefaultWindowWidth
	}
	current = Clamp(current, total)

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > total {
		end = total
		if s := end - width + 1; s >= 1 {
			start = s
		} else {
			start = 1
		}
	}

	w := Window{Pages: make([]int, 0, end-start+1)}
	for p := start; p <= end; p++ {
		w.Pages = append(w.Pages, p)
	}
	w.GapBefore = start > 2
	w.GapAfter = end < total-1
	return w
}
