package compare

import (
	"testing"
)

type client struct{}

func TestIsNil(t *testing.T) {
	var p *client
	var m map[string]int
	var s []int
	var f func()
	var iface interface{ Close() error }

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{name: "untyped nil", in: nil, want: true},
		{name: "typed nil pointer", in: p, want: true},
		{name: "nil map", in: m, want: true},
		{name: "nil slice", in: s, want: true},
		{name: "nil func", in: f, want: true},
		{name: "nil interface", in: iface, want: true},
		{name: "pointer", in: &client{}, want: false},
		{name: "struct", in: client{}, want: false},
		{name: "int", in: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.in); got != tt.want {
				t.Errorf("IsNil() = %v, want %v", got, tt.want)
			}
		})
	}
}
