package money

import "testing"

func TestParseBRL(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "R$ 28,00", want: 2800},
		{in: "R$ 89,00", want: 8900},
		{in: "R$ 8,50", want: 850},
		{in: "R$ 1.250,99", want: 125099},
		{in: "18,00", want: 1800},
		{in: "R$ 22", want: 2200},
		{in: "", wantErr: true},
		{in: "R$ abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBRL(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseBRL(%q): expected error, got %d", tt.in, got)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseBRL(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBRL(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 2800, want: "R$ 28,00"},
		{cents: 850, want: "R$ 8,50"},
		{cents: 0, want: "R$ 0,00"},
		{cents: 7200, want: "R$ 72,00"},
		{cents: -500, want: "-R$ 5,00"},
	}

	for _, tt := range tests {
		if got := FormatBRL(tt.cents); got != tt.want {
			t.Errorf("FormatBRL(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
