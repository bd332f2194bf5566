package utils

// TotalPages is ceil(total/limit). A page past the end is served as an empty
// list by the repositories, never as an error.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
