package elog

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Severity
	}{
		{
			name: "empty body",
			body: "",
			want: SeverityInfo,
		},
		{
			name: "no markers",
			body: "just some text\nacross two lines\n",
			want: SeverityInfo,
		},
		{
			name: "single info section",
			body: "INFO: postinst\nall good\n",
			want: SeverityInfo,
		},
		{
			name: "qa only stays qa",
			body: "QA: prepare\nsloppy ebuild\n",
			want: SeverityQA,
		},
		{
			name: "error beats warn",
			body: "WARN: x\nERROR: x\n",
			want: SeverityError,
		},
		{
			name: "warn beats qa",
			body: "QA: x\nWARN: x\n",
			want: SeverityWarning,
		},
		{
			name: "log beats info",
			body: "INFO: setup\nLOG: postinst\n",
			want: SeverityLog,
		},
		{
			name: "marker mid-line ignored",
			body: "the build said ERROR: something\n",
			want: SeverityInfo,
		},
		{
			name: "marker mid-text on its own line counts",
			body: "INFO: setup\nfine so far\nWARN: postinst\n",
			want: SeverityWarning,
		},
		{
			name: "lowercase marker ignored",
			body: "error: not a portage marker\n",
			want: SeverityInfo,
		},
		{
			name: "marker without colon ignored",
			body: "ERROR without colon\n",
			want: SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.body); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	body := "QA: prepare\nWARN: compile\nsome detail\n"
	first := Classify(body)
	for i := 0; i < 10; i++ {
		if got := Classify(body); got != first {
			t.Fatalf("Classify() = %v on pass %d, want %v", got, i, first)
		}
	}
}

func TestParseMarker(t *testing.T) {
	for _, sev := range Severities() {
		got, ok := ParseMarker(sev.Marker())
		if !ok || got != sev {
			t.Errorf("ParseMarker(%q) = %v, %v, want %v, true", sev.Marker(), got, ok, sev)
		}
	}
	if _, ok := ParseMarker("DEBUG"); ok {
		t.Errorf("ParseMarker(%q) ok = true, want false", "DEBUG")
	}
	if _, ok := ParseMarker("info"); ok {
		t.Errorf("ParseMarker(%q) ok = true, want false", "info")
	}
}

func TestSeverityOrdering(t *testing.T) {
	order := []Severity{SeverityQA, SeverityInfo, SeverityLog, SeverityWarning, SeverityError}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("severity %v should rank below %v", order[i-1], order[i])
		}
	}
}

func TestSeverityStrings(t *testing.T) {
	tests := []struct {
		sev    Severity
		name   string
		marker string
	}{
		{SeverityQA, "QA", "QA"},
		{SeverityInfo, "Info", "INFO"},
		{SeverityLog, "Log", "LOG"},
		{SeverityWarning, "Warning", "WARN"},
		{SeverityError, "Error", "ERROR"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.sev.Marker(); got != tt.marker {
			t.Errorf("Marker() = %q, want %q", got, tt.marker)
		}
		if tt.sev.Color() == "" {
			t.Errorf("Color() for %v is empty", tt.sev)
		}
	}
}
