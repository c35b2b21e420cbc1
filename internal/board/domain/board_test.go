package domain

import (
	"testing"

	authdomain "taskboard-backend/internal/auth/domain"
)

func TestHasMember(t *testing.T) {
	board := &Board{
		OwnerID: "owner",
		Members: []authdomain.User{{ID: "member"}},
	}

	if !board.HasMember("owner") {
		t.Error("owner must count as a member")
	}
	if !board.HasMember("member") {
		t.Error("listed member must have access")
	}
	if board.HasMember("stranger") {
		t.Error("stranger must not have access")
	}
}

func TestStringArrayValue(t *testing.T) {
	empty, err := StringArray{}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if empty != "[]" {
		t.Fatalf("empty array stores as %v, want []", empty)
	}

	v, err := StringArray{"urgent", "backend"}.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if string(v.([]byte)) != `["urgent","backend"]` {
		t.Fatalf("stored %s", v)
	}
}

func TestStringArrayScan(t *testing.T) {
	var tags StringArray
	if err := tags.Scan(`["a","b"]`); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Fatalf("scanned %v", tags)
	}

	// Absent and empty values decode to an empty list, never nil semantics
	if err := tags.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if tags == nil || len(tags) != 0 {
		t.Fatalf("nil value scanned to %v, want empty list", tags)
	}

	if err := tags.Scan([]byte{}); err != nil {
		t.Fatalf("scan empty: %v", err)
	}
	if tags == nil || len(tags) != 0 {
		t.Fatalf("empty value scanned to %v, want empty list", tags)
	}
}
