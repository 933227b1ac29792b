package hostname

import "testing"

func TestNormalize(t *testing.T) {
	for _, c := range []struct {
		name string
		raw  string
		want string
	}{
		{"Lower", "www.example.com", "www.example.com"},
		{"Upper", "WWW.Example.COM", "www.example.com"},
		{"TrailingDot", "example.com.", "example.com"},
		{"Whitespace", "  example.com\n", "example.com"},
		{"SingleLabel", "localhost", "localhost"},
		{"IDN", "пример.рф", "xn--e1afmkfd.xn--p1ai"},
		{"IDNMixed", "www.Bücher.de", "www.xn--bcher-kva.de"},
	} {
		t.Run(c.name, func(t *testing.T) {
			got, err := Normalize(c.raw)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("Normalize(%q) = %q; want %q", c.raw, got, c.want)
			}
		})
	}
}

func TestNormalizeError(t *testing.T) {
	for _, c := range []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"OnlyDot", "."},
		{"OnlyWhitespace", "  \t"},
		{"BadIDN", "xn--é.com"},
	} {
		t.Run(c.name, func(t *testing.T) {
			if got, err := Normalize(c.raw); err == nil {
				t.Errorf("Normalize(%q) = %q; want error", c.raw, got)
			}
		})
	}
}
