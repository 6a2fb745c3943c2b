package util_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urlkit/internal/util"
)

func TestCutLast(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		s, sep     string
		wantBefore string
		wantAfter  string
		wantFound  bool
	}{
		{"empty", "", "/", "", "", false},
		{"no sep", "abc", "/", "", "abc", false},
		{"single", "/a", "/", "", "a", true},
		{"many", "/a/b/c", "/", "/a/b", "c", true},
		{"trailing", "/a/b/", "/", "/a/b", "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			before, after, found := util.CutLast(c.s, c.sep)
			if before != c.wantBefore || after != c.wantAfter || found != c.wantFound {
				t.Errorf("util.CutLast(%q, %q) = (%q, %q, %v), want (%q, %q, %v)",
					c.s, c.sep, before, after, found, c.wantBefore, c.wantAfter, c.wantFound)
			}
		})
	}
}

func TestLCase(t *testing.T) {
	t.Parallel()

	if got, want := util.LCase("HtTP"), "http"; got != want {
		t.Errorf("util.LCase(\"HtTP\") = %q, want %q", got, want)
	}
	if !util.EqFold("Example.COM", "example.com") {
		t.Error("util.EqFold(\"Example.COM\", \"example.com\") = false, want true")
	}
}

func TestMust2(t *testing.T) {
	t.Parallel()

	if got := util.Must2(42, nil); got != 42 {
		t.Errorf("util.Must2(42, nil) = %d, want 42", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("util.Must2(0, err) did not panic")
		}
	}()
	util.Must2(0, errors.New("boom"))
}
