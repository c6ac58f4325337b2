package intent

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNumberList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int64
		wantErr bool
	}{
		{name: "comma separated", input: "28, 87, 33", want: []int64{28, 87, 33}},
		{name: "whitespace separated", input: "1 2\t3", want: []int64{1, 2, 3}},
		{name: "mixed separators", input: " 4,,5 ,6 ", want: []int64{4, 5, 6}},
		{name: "negative token", input: "-3, 4", wantErr: true},
		{name: "plus sign token", input: "3, +4", wantErr: true},
		{name: "leading zeros", input: "007, 10", want: []int64{7, 10}},
		{name: "empty", input: "", want: nil},
		{name: "only separators", input: " , , ", want: nil},
		{name: "word token", input: "1, two, 3", wantErr: true},
		{name: "decimal token", input: "1.5", wantErr: true},
		{name: "overflow", input: "1, 99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNumberList(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidNumber) {
					t.Fatalf("ParseNumberList(%q) error = %v, want ErrInvalidNumber", tt.input, err)
				}
				if got != nil {
					t.Errorf("ParseNumberList(%q) returned partial list %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumberList(%q) error = %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseNumberList(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestJoinNumbers(t *testing.T) {
	if got := joinNumbers([]int64{43, 13}); got != "43, 13" {
		t.Errorf("joinNumbers() = %q, want %q", got, "43, 13")
	}
	if got := joinNumbers(nil); got != "" {
		t.Errorf("joinNumbers(nil) = %q, want empty", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "", want: "", wantOK: false},
		{input: "   ", want: "", wantOK: false},
		{input: "  What Is 1 PLUS 2?  ", want: "what is 1 plus 2?", wantOK: true},
		{input: "already normal", want: "already normal", wantOK: true},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
		// Idempotent
		if again, _ := Normalize(got); again != got {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", tt.input, again, got)
		}
	}
}

func TestKind_MarshalText(t *testing.T) {
	tests := map[Kind]string{NoMatch: "no_match", Value: "value", Error: "error"}
	for k, want := range tests {
		b, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		if string(b) != want {
			t.Errorf("MarshalText(%d) = %q, want %q", k, b, want)
		}
	}
}
