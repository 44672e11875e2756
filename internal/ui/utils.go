package ui

func truncate(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length <= 3 {
		return "..."
	}
	return string(runes[:length-3]) + "..."
}
