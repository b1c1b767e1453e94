package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/render"
)

func TestRegisterCreateList(t *testing.T) {
	var gotW, gotH int
	Register("test-null", "nothing", func(width, height int) render.Backend {
		gotW, gotH = width, height
		return nil
	})

	if !Exists("test-null") {
		t.Fatal("registered driver should exist")
	}
	if _, err := Create("test-null", 640, 480); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if gotW != 640 || gotH != 480 {
		t.Errorf("factory got %dx%d, expected 640x480", gotW, gotH)
	}

	found := false
	for _, d := range List() {
		if d.Name == "test-null" {
			found = true
			if d.Description != "nothing" {
				t.Errorf("Description = %q, expected %q", d.Description, "nothing")
			}
		}
	}
	if !found {
		t.Error("List() should include the registered driver")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-driver", 1, 1)
	if err == nil || !strings.Contains(err.Error(), "unknown driver") {
		t.Errorf("Create(unknown) error = %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "", func(int, int) render.Backend { return nil })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "", func(int, int) render.Backend { return nil })
}

func TestListSorted(t *testing.T) {
	Register("test-b", "", func(int, int) render.Backend { return nil })
	Register("test-a", "", func(int, int) render.Backend { return nil })
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}
}
