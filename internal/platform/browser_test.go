package platform

import "testing"

func TestOpenURLRejectsNonWebSchemes(t *testing.T) {
	cases := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com/file",
		"://not-a-url",
		"",
	}

	for _, raw := range cases {
		if err := OpenURL(raw); err == nil {
			t.Errorf("OpenURL(%q) should have been refused", raw)
		}
	}
}
