package pagination

import "dualpresenter/internal/roster"

// Paginate splits names into consecutive pages of pageSize names. The last
// page may be shorter. A pageSize of zero or less yields one page holding
// every name; an empty list yields no pages.
func Paginate(names []roster.Name, pageSize int) [][]roster.Name {
	if len(names) == 0 {
		return [][]roster.Name{}
	}
	if pageSize <= 0 {
		pageSize = len(names)
	}
	pages := make([][]roster.Name, 0, PageCount(len(names), pageSize))
	for start := 0; start < len(names); start += pageSize {
		end := min(start+pageSize, len(names))
		page := make([]roster.Name, end-start)
		copy(page, names[start:end])
		pages = append(pages, page)
	}
	return pages
}

// PageCount returns how many pages total names fill.
func PageCount(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	if pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp limits index to [0, pageCount-1]. With no pages the index is 0.
func Clamp(index, pageCount int) int {
	if pageCount <= 0 || index < 0 {
		return 0
	}
	if index >= pageCount {
		return pageCount - 1
	}
	return index
}

// Next advances one page, staying on the last page.
func Next(index, pageCount int) int {
	return Clamp(Clamp(index, pageCount)+1, pageCount)
}

// Prev moves back one page, staying on the first page.
func Prev(index, pageCount int) int {
	return Clamp(Clamp(index, pageCount)-1, pageCount)
}

// Page returns the page at index after clamping, and the clamped index.
func Page(pages [][]roster.Name, index int) ([]roster.Name, int) {
	index = Clamp(index, len(pages))
	if len(pages) == 0 {
		return []roster.Name{}, 0
	}
	return pages[index], index
}
