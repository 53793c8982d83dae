package apiclient

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeBaseURL(t *testing.T) {
	cases := map[string]string{
		"localhost:9000":         "http://localhost:9000",
		"  localhost:9000  ":     "http://localhost:9000",
		"http://api.local":       "http://api.local",
		"https://api.local:8443": "https://api.local:8443",
		"":                       "http://",
		"httpbin.org":            "httpbin.org",
	}
	for in, want := range cases {
		if got := NormalizeBaseURL(in); got != want {
			t.Fatalf("NormalizeBaseURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEndpointSetAndURL(t *testing.T) {
	e := NewEndpoint("")
	if e.URL() != DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", e.URL())
	}
	if got := e.Set(" localhost:9000 "); got != "http://localhost:9000" {
		t.Fatalf("Set returned %q", got)
	}
	if e.URL() != "http://localhost:9000" {
		t.Fatalf("URL not updated, got %q", e.URL())
	}
}

func TestRecordKeepsFirstPositionOnDuplicateKeys(t *testing.T) {
	v, err := Decode([]byte(`{"b":1,"a":2,"b":3}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	rec := v.(*Record)
	if keys := strings.Join(rec.Keys(), ","); keys != "b,a" {
		t.Fatalf("unexpected keys %q", keys)
	}
	if got, _ := rec.Get("b"); got != json.Number("3") {
		t.Fatalf("expected last value to win, got %#v", got)
	}
}

func TestDecodeNestedValues(t *testing.T) {
	v, err := Decode([]byte(` [ {"id":1,"tags":["a",null]}, true ] `))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	items := v.([]any)
	if len(items) != 2 || items[1] != true {
		t.Fatalf("unexpected items %#v", items)
	}
	raw, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `[{"id":1,"tags":["a",null]},true]` {
		t.Fatalf("unexpected encoding %s", raw)
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	if _, err := Decode([]byte(`{} {}`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
	if _, err := Decode([]byte(`   `)); err == nil {
		t.Fatalf("expected error for blank input")
	}
}
