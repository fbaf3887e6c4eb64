package converter

import "testing"

func TestEncodeIDsNilBecomesEmptyArray(t *testing.T) {
	raw, err := EncodeIDs(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("nil ids: got %q, want %q", raw, "[]")
	}
}

func TestDecodeIDsEmptyText(t *testing.T) {
	ids, err := DecodeIDs("")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Fatalf("empty text must decode to an empty list, got %v", ids)
	}
}

func TestIDsRoundTrip(t *testing.T) {
	raw, err := EncodeIDs([]int64{3, 1, 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	ids, err := DecodeIDs(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ids) != 3 || ids[0] != 3 || ids[1] != 1 || ids[2] != 2 {
		t.Fatalf("order must survive the round trip: %v", ids)
	}
}

func TestDecodeIDsGarbage(t *testing.T) {
	if _, err := DecodeIDs("{not json"); err == nil {
		t.Fatalf("garbage must fail to decode")
	}
}

func TestNamesRoundTripKeepsUnicode(t *testing.T) {
	names := []string{"Fotometría", "Rigidez Dieléctrica"}

	raw, err := EncodeNames(names)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeNames(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != names[0] || decoded[1] != names[1] {
		t.Fatalf("got %v, want %v", decoded, names)
	}
}

func TestEncodeNamesNilBecomesEmptyArray(t *testing.T) {
	raw, err := EncodeNames(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if raw != "[]" {
		t.Fatalf("nil names: got %q, want %q", raw, "[]")
	}
}
