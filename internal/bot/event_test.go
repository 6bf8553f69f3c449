package bot

import "testing"

func TestDecodeTextCommands(t *testing.T) {
	cases := []struct {
		text string
		want Event
	}{
		{"/start", StartCommand{}},
		{"/start@dispatch_bot", StartCommand{}},
		{"  /help  ", HelpCommand{}},
		{"/myorders", MyOrdersCommand{}},
		{"/otw", OTWCommand{}},
		{"/arrived", ArrivedCommand{}},
		{"/done", DoneCommand{}},
		{"/report", ReportCommand{}},
		{"TX-9101", LegacyLink{TechID: "TX-9101"}},
		{"tx-9105", LegacyLink{TechID: "TX-9105"}},
		{"TX-", Unrecognized{}},
		{"hello", Unrecognized{}},
		{"/unknown", Unrecognized{}},
		{"", Unrecognized{}},
	}
	for _, tc := range cases {
		if got := DecodeText(tc.text); got != tc.want {
			t.Errorf("DecodeText(%q) = %#v, want %#v", tc.text, got, tc.want)
		}
	}
}

func TestDecodeCallback(t *testing.T) {
	cases := []struct {
		data string
		want Event
	}{
		{"accept_ORD-4501", AcceptCallback{OrderID: "ORD-4501"}},
		{"reject_ORD-4501", RejectCallback{OrderID: "ORD-4501"}},
		{"reason_distance_ORD-4501", ReasonCallback{Category: "distance", OrderID: "ORD-4501"}},
		{"reason_busy_ORD-9", ReasonCallback{Category: "busy", OrderID: "ORD-9"}},
		{"reason_ORD-4501", Unrecognized{}},
		{"reason__", Unrecognized{}},
		{"something_else", Unrecognized{}},
		{"", Unrecognized{}},
	}
	for _, tc := range cases {
		if got := DecodeCallback(tc.data); got != tc.want {
			t.Errorf("DecodeCallback(%q) = %#v, want %#v", tc.data, got, tc.want)
		}
	}
}
