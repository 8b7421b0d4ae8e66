package youtube

import "testing"

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name   string
		url    string
		wantID string
		wantOK bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"short link", "https://youtu.be/abc12345678", "abc12345678", true},
		{"short link with query", "https://youtu.be/abc12345678?si=xyz", "abc12345678", true},
		{"id with underscore and dash", "https://www.youtube.com/watch?v=a_b-c_d-e_f", "a_b-c_d-e_f", true},
		{"bare id without marker", "dQw4w9WgXcQ", "", false},
		{"too short id", "https://youtu.be/short", "", false},
		{"not a url", "not-a-url", "", false},
		{"empty string", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := ExtractVideoID(tc.url)
			if ok != tc.wantOK {
				t.Fatalf("ExtractVideoID(%q) ok = %v, want %v", tc.url, ok, tc.wantOK)
			}
			if id != tc.wantID {
				t.Fatalf("ExtractVideoID(%q) = %q, want %q", tc.url, id, tc.wantID)
			}
		})
	}
}

func TestExtractVideoIDDeterministic(t *testing.T) {
	url := "https://youtu.be/abc12345678"
	first, _ := ExtractVideoID(url)
	second, _ := ExtractVideoID(url)
	if first != second {
		t.Fatalf("expected identical results, got %q and %q", first, second)
	}
}
