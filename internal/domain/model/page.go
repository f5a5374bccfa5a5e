package model

// Page is a window over an ordered list
type Page[T any] struct {
	Content          []T `json:"content"`
	Number           int `json:"number"`
	Size             int `json:"size"`
	TotalElements    int `json:"totalElements"`
	TotalPages       int `json:"totalPages"`
	NumberOfElements int `json:"numberOfElements"`
}

// Paginate cuts page number (0-based) of the given size out of items.
// Out of range pages are empty, never nil.
func Paginate[T any](items []T, number int, size int) *Page[T] {
	if size <= 0 {
		size = 1
	}
	if number < 0 {
		number = 0
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	content := []T{}
	start := number * size
	if start < total {
		end := min(start+size, total)
		content = append(content, items[start:end]...)
	}

	return &Page[T]{
		Content:          content,
		Number:           number,
		Size:             size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
	}
}
