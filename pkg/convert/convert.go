package convert

import "strings"

const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IntToBase62 converts a non-negative integer to a base62 string.
func IntToBase62(n int) string {
	if n == 0 {
		return string(base62Chars[0])
	}

	var result strings.Builder
	for n > 0 {
		result.WriteByte(base62Chars[n%62])
		n /= 62
	}

	// Reverse the string
	str := result.String()
	runes := []rune(str)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
