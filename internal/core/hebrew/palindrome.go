package hebrew

// MinPalindromeLength is the shortest normalised form considered a
// palindrome anywhere in the application. Single letters and mirrored
// two-letter pairs are not interesting.
const MinPalindromeLength = 3

// IsPalindrome reports whether the normalised form reads identically
// forward and backward. Forms shorter than MinPalindromeLength are never
// palindromes.
func IsPalindrome(form string) bool {
	runes := []rune(form)
	if len(runes) < MinPalindromeLength {
		return false
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}
