package kitty

import (
	"errors"
	"reflect"
	"testing"
)

func TestArgs(t *testing.T) {
	b := New("unix:/tmp/kittysocket")

	tests := []struct {
		name string
		file string
		all  bool
		want []string
	}{
		{
			name: "current window",
			file: "/themes/gruvbox.conf",
			all:  false,
			want: []string{"@", "--to=unix:/tmp/kittysocket", "set-colors", "/themes/gruvbox.conf"},
		},
		{
			name: "all windows",
			file: "/home/me/.config/kitty/theme.conf",
			all:  true,
			want: []string{"@", "--to=unix:/tmp/kittysocket", "set-colors", "--all", "/home/me/.config/kitty/theme.conf"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.args(tt.file, tt.all); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyInvokesKitty(t *testing.T) {
	var gotName string
	var gotArgs []string
	b := New("unix:/tmp/kittysocket")
	b.run = func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	b.Apply("/themes/ayu.conf", false)

	if gotName != "kitty" {
		t.Errorf("command = %q, want kitty", gotName)
	}
	want := []string{"@", "--to=unix:/tmp/kittysocket", "set-colors", "/themes/ayu.conf"}
	if !reflect.DeepEqual(gotArgs, want) {
		t.Errorf("args = %v, want %v", gotArgs, want)
	}
}

func TestApplyIgnoresFailure(t *testing.T) {
	b := New("unix:/tmp/kittysocket")
	b.run = func(name string, args ...string) error {
		return errors.New("exit status 1")
	}

	// The exit status of the external call is not interpreted; Apply must
	// not panic or surface the error.
	b.Apply("/themes/ayu.conf", true)
}
