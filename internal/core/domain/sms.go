package domain

// SMSSegments estimates how many billing segments a message occupies: one
// segment up to 160 characters, then 153 characters each once the UDH
// header eats into every part. Display-only; the provider does the real
// accounting.
func SMSSegments(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	if n <= 160 {
		return 1
	}
	return (n + 152) / 153
}
