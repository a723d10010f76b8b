package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		expected string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation", "Go: the good, the bad & the ugly!", "go-the-good-the-bad-the-ugly"},
		{"repeated separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  ...Leading article...  ", "leading-article"},
		{"latin diacritics", "Crème Brûlée à Göteborg", "creme-brulee-a-goteborg"},
		{"cyrillic", "Привет мир", "privet-mir"},
		{"cyrillic digraphs", "Щука и ёж", "shchuka-i-yozh"},
		{"mixed", "Go 1.22 — что нового?", "go-1-22-chto-novogo"},
		{"digits kept", "Top 10 Posts of 2024", "top-10-posts-of-2024"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Make(tc.in))
		})
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	title := "Ещё один заголовок: Testing, Déjà Vu!"
	first := Make(title)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Make(title))
	}
}
