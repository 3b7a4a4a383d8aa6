package rewear

import (
	"testing"
)

func TestBuildQueryOmitsEmptyKeepsZero(t *testing.T) {
	var nilInt *int
	qs := BuildQuery(Params{
		"q":           "",
		"category_id": nilInt,
		"limit":       0,
		"min_points":  0,
		"offset":      20,
		"condition":   "good",
		"shipping":    false,
	})

	parsed := ParseQuery(qs)
	if _, ok := parsed["q"]; ok {
		t.Error("empty string was not omitted")
	}
	if _, ok := parsed["category_id"]; ok {
		t.Error("nil pointer was not omitted")
	}
	// Ноль — значимое значение, не опускается
	if v, ok := parsed["limit"]; !ok || v != float64(0) {
		t.Errorf("limit = %v, want 0", v)
	}
	if v := parsed["offset"]; v != float64(20) {
		t.Errorf("offset = %v", v)
	}
	if v := parsed["condition"]; v != "good" {
		t.Errorf("condition = %v", v)
	}
	if v := parsed["shipping"]; v != false {
		t.Errorf("shipping = %v", v)
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	ship := true
	in := Params{
		"q":          "denim jacket",
		"limit":      50,
		"min_points": 0,
		"shipping":   &ship,
		"sort_by":    "created_at",
	}

	out := ParseQuery(BuildQuery(in))
	if len(out) != len(in) {
		t.Fatalf("round trip lost keys: %v -> %v", in, out)
	}
	if out["q"] != "denim jacket" {
		t.Errorf("q = %v", out["q"])
	}
	if out["limit"] != float64(50) {
		t.Errorf("limit = %v", out["limit"])
	}
	if out["min_points"] != float64(0) {
		t.Errorf("min_points = %v", out["min_points"])
	}
	if out["shipping"] != true {
		t.Errorf("shipping = %v", out["shipping"])
	}
}

func TestNotificationSocketURL(t *testing.T) {
	c := New("https://api.rewear.example")
	if _, err := c.NotificationSocketURL(""); err != ErrNoToken {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}

	u, err := c.WithToken("tok/with+chars").NotificationSocketURL("")
	if err != nil {
		t.Fatalf("NotificationSocketURL: %v", err)
	}
	want := "wss://api.rewear.example/ws?token=tok%2Fwith%2Bchars"
	if u != want {
		t.Errorf("url = %q, want %q", u, want)
	}
}
