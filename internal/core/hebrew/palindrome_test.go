package hebrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		name string
		form string
		want bool
	}{
		{"odd palindrome", "אבא", true},
		{"even palindrome", "אבבא", true},
		{"longer palindrome", "נעראבבארענ", true},
		{"not a palindrome", "אבג", false},
		{"empty", "", false},
		{"single letter", "א", false},
		{"mirrored pair below minimum", "בב", false},
		{"near palindrome", "אבצבב", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPalindrome(tt.form))
		})
	}
}
