package match

import "testing"

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "whitespace dropped",
			in:   "Hello,  world!\n",
			want: "Hello,world!",
		},
		{
			name: "punctuation set kept",
			in:   `Wait... really?! "Yes"; no: maybe, don't`,
			want: `Wait...really?!"Yes";no:maybe,don't`,
		},
		{
			name: "dashes and brackets dropped",
			in:   "re-flow (page) [break] — end",
			want: "reflowpagebreakend",
		},
		{
			name: "case preserved",
			in:   "CamelCase STAYS",
			want: "CamelCaseSTAYS",
		},
		{
			name: "digits kept",
			in:   "page 42 of 100",
			want: "page42of100",
		},
		{
			name: "non-ascii dropped",
			in:   "résumé naïve",
			want: "rsumnave",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "only excluded characters",
			in:   " \t\n-–()",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if got != tt.want {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	inputs := []string{
		"Hello, world!",
		"line\nbreaks and\ttabs",
		`quotes "inside" it's fine`,
		"déjà vu 2.0",
	}
	for _, in := range inputs {
		once := Tokenize(in)
		twice := Tokenize(once)
		if twice != once {
			t.Errorf("Tokenize(Tokenize(%q)) = %q, want %q", in, twice, once)
		}
	}
}
