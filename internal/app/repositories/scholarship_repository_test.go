package repositories

import "testing"

func TestLikeEscaperNeutralizesMetacharacters(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"oxford", "oxford"},
		{"100%", `100\%`},
		{"_x", `\_x`},
		{`a\b`, `a\\b`},
		{"%_", `\%\_`},
	}

	for _, tc := range cases {
		if got := likeEscaper.Replace(tc.in); got != tc.want {
			t.Fatalf("escape %q: got %q, want %q", tc.in, got, tc.want)
		}
	}
}
