package generation

import "testing"

func TestOnlyLatestTokenIsCurrent(t *testing.T) {
	var c Counter
	first := c.Next()
	if !c.IsCurrent(first) {
		t.Fatal("fresh token should be current")
	}
	second := c.Next()
	if c.IsCurrent(first) {
		t.Fatal("superseded token reported current")
	}
	if !c.IsCurrent(second) || second <= first {
		t.Fatalf("unexpected tokens first=%d second=%d", first, second)
	}
}
