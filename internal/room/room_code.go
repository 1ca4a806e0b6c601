package room

import "math/rand/v2"

const codeLength = 4
const maxRetries = 100

// I and O are left out so a code read off a log line is never mistaken for 1 or 0.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateCode returns a short room label not present in existing.
func GenerateCode(existing map[string]bool) string {
	for range maxRetries {
		if code := randomCode(); !existing[code] {
			return code
		}
	}
	// 24^4 labels; a clash here only makes two log lines share a label.
	return randomCode()
}

func randomCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}
