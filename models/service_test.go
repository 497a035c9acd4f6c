package models

import (
	"testing"
)

func TestGeoPriceListScanShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want int
	}{
		{"array bytes", []byte(`[{"region":"europe","amount":100,"currency":"EUR"}]`), 1},
		{"array string", `[{"region":"europe","amount":100,"currency":"EUR"},{"region":"asia","amount":80,"currency":"USD"}]`, 2},
		{"single object", []byte(`{"region":"europe","amount":100,"currency":"EUR"}`), 1},
		{"double-encoded string", []byte(`"[{\"region\":\"europe\",\"amount\":100,\"currency\":\"EUR\"}]"`), 1},
		{"nil", nil, 0},
		{"unparseable tolerated", []byte(`not json`), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list GeoPriceList
			if err := list.Scan(tt.raw); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(list) != tt.want {
				t.Fatalf("expected %d entries, got %d: %+v", tt.want, len(list), list)
			}
		})
	}
}

func TestGeoPriceListScanRejectsUnsupportedType(t *testing.T) {
	var list GeoPriceList
	if err := list.Scan(42); err == nil {
		t.Fatal("expected error for unsupported source type")
	}
}

func TestGeoPriceListValueRoundTrip(t *testing.T) {
	list := GeoPriceList{{Region: "europe", Amount: 100, Currency: "EUR"}}

	value, err := list.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded GeoPriceList
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decoded) != 1 || decoded[0] != list[0] {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
