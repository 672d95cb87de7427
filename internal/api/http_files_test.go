package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	cases := []struct {
		name string
		base string
		key  string
		want string
	}{
		{name: "default base", base: "", key: "plants/2025/01/02/tulsi.png", want: "/files/plants/2025/01/02/tulsi.png"},
		{name: "relative base gains slash", base: "media/", key: "/plants/a.png", want: "/media/plants/a.png"},
		{name: "cdn base", base: "https://cdn.example.com/herbal/", key: "plants/a.png", want: "https://cdn.example.com/herbal/plants/a.png"},
		{name: "absolute key untouched", base: "/files", key: "https://bucket.example.com/a.png", want: "https://bucket.example.com/a.png"},
		{name: "empty key", base: "/files", key: "  ", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &HTTPHandler{storagePublicBase: normalisePublicBase(tc.base)}
			assert.Equal(t, tc.want, h.publicURL(tc.key))
		})
	}
}
