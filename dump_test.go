package ccbor_test

import (
	"strings"
	"testing"

	"github.com/detcbor/ccbor"
)

func TestDumpAnnotatesNestedStructure(t *testing.T) {
	v := ccbor.Array(ccbor.Unsigned(1), ccbor.Text("x"))
	enc, err := ccbor.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ccbor.Dump(enc, nil)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	for _, want := range []string{"array(2)", "unsigned(1)", `text("x")`} {
		if !strings.Contains(out, want) {
			t.Errorf("dump output missing %q:\n%s", want, out)
		}
	}
}

func TestDumpReportsOffsetOnError(t *testing.T) {
	// array(2) header followed by only one element.
	bad := []byte{0x82, 0x01}
	_, err := ccbor.Dump(bad, nil)
	if err == nil {
		t.Fatal("expected error for truncated array")
	}
	if !strings.Contains(err.Error(), "at offset 2") {
		t.Fatalf("expected error at offset 2, got %v", err)
	}
}

func TestValueDiagnosticNotationMatchesMapOrdering(t *testing.T) {
	m := ccbor.NewMap()
	_ = m.Insert(ccbor.Text("z"), ccbor.Unsigned(1))
	_ = m.Insert(ccbor.Text("a"), ccbor.Unsigned(2))
	got := ccbor.MapValue(m).String()
	want := `{"a": 2, "z": 1}`
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
