package ocr

import "testing"

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{name: "dollar amount", input: "$14.00", want: f(14.00)},
		{name: "empty string", input: "", want: nil},
		{name: "numeric input", input: 12, want: f(12)},
		{name: "not a price", input: "N/A", want: nil},
		{name: "float input", input: 9.5, want: f(9.5)},
		{name: "absent", input: nil, want: nil},
		{name: "thousands separator", input: "$1,250.00", want: f(1250.00)},
		{name: "trailing units", input: "14.50 per glass", want: f(14.50)},
		{name: "currency words only", input: "market price", want: nil},
		{name: "multiple periods", input: "1.2.3", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePrice(tt.input)

			if tt.want == nil {
				if got != nil {
					t.Errorf("NormalizePrice(%v) = %v, want nil", tt.input, *got)
				}
				return
			}

			if got == nil {
				t.Fatalf("NormalizePrice(%v) = nil, want %v", tt.input, *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("NormalizePrice(%v) = %v, want %v", tt.input, *got, *tt.want)
			}
		})
	}
}

func f(v float64) *float64 {
	return &v
}
