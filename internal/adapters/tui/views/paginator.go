package views

// Paginator keeps a cursor over a list of rows and the window of rows
// that fits on screen.
type Paginator struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPaginator creates a new paginator with the given page size
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{
		pageSize: pageSize,
	}
}

// SetPageSize changes how many rows fit in the window
func (p *Paginator) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.pageOffset = 0
	p.scrollToCursor()
}

// SetTotal sets the number of rows, clamping the cursor
func (p *Paginator) SetTotal(total int) {
	p.totalItems = total
	p.SetCursor(p.cursor)
}

// Cursor returns the current cursor position (absolute index)
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor moves the cursor, clamped to the rows
func (p *Paginator) SetCursor(pos int) {
	if pos >= p.totalItems {
		pos = p.totalItems - 1
	}
	if pos < 0 {
		pos = 0
	}
	p.cursor = pos
	p.scrollToCursor()
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor == 0 {
		return false
	}
	p.SetCursor(p.cursor - 1)
	return true
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor >= p.totalItems-1 {
		return false
	}
	p.SetCursor(p.cursor + 1)
	return true
}

// VisibleRange returns the start and end indices of the visible window
func (p *Paginator) VisibleRange() (start, end int) {
	start = p.pageOffset
	end = min(p.pageOffset+p.pageSize, p.totalItems)
	return
}

// HasMore reports whether rows exist past the visible window
func (p *Paginator) HasMore() (above, below bool) {
	start, end := p.VisibleRange()
	return start > 0, end < p.totalItems
}

// scrollToCursor slides the window just far enough to show the cursor
func (p *Paginator) scrollToCursor() {
	if p.cursor < p.pageOffset {
		p.pageOffset = p.cursor
	} else if p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = p.cursor - p.pageSize + 1
	}
}
