package players

import (
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"FirstName", "firstName"},
		{"LastName", "lastName"},
		{"Group", "group"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestFullNameTrimsParts(t *testing.T) {
	p := Player{FirstName: " Connor ", LastName: "McDavid"}
	if got := p.FullName(); got != "Connor McDavid" {
		t.Fatalf("expected Connor McDavid, got %q", got)
	}
}

func TestNamesSkipsIncompleteEntries(t *testing.T) {
	names, skipped := Names([]Player{
		{FirstName: "A", LastName: "B"},
		{FirstName: "", LastName: "NoFirst"},
		{FirstName: "NoLast", LastName: "  "},
		{FirstName: "C", LastName: "D"},
	})
	if skipped != 2 {
		t.Fatalf("expected 2 skipped, got %d", skipped)
	}
	if len(names) != 2 || names[0] != "A B" || names[1] != "C D" {
		t.Fatalf("unexpected names %v", names)
	}
}
