package content_test

import (
	"testing"

	"game-press/content"
)

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{name: "rfc3339", in: "2025-03-15T10:30:00Z", want: "15 de março de 2025"},
		{name: "rfc3339 with millis", in: "2026-08-01T00:00:00.000Z", want: "01 de agosto de 2026"},
		{name: "sql datetime", in: "2024-12-25 18:00:00", want: "25 de dezembro de 2024"},
		{name: "bare date", in: "2023-01-02", want: "02 de janeiro de 2023"},
		{name: "unparseable passthrough", in: "ontem", want: "ontem"},
		{name: "empty passthrough", in: "", want: ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := content.FormatDate(testCase.in)
			if got != testCase.want {
				t.Fatalf("FormatDate(%q) = %q, want %q", testCase.in, got, testCase.want)
			}
		})
	}
}
