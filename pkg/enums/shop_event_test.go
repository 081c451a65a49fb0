package enums

import "testing"

func TestParseShopEvent(t *testing.T) {
	for _, event := range validShopEvents {
		got, err := ParseShopEvent(event.String())
		if err != nil {
			t.Fatalf("parse %s: %v", event, err)
		}
		if got != event || !got.IsValid() {
			t.Fatalf("expected %s got %s", event, got)
		}
	}
	if _, err := ParseShopEvent("order_placed"); err == nil {
		t.Fatalf("expected error for unknown event")
	}
	if ShopEvent("nope").IsValid() {
		t.Fatalf("expected unknown event to be invalid")
	}
}
