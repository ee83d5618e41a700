package elog

// Severity ranks elog message classes from least to most severe. The zero
// value is the lowest tier, QA.
type Severity int

const (
	SeverityQA Severity = iota
	SeverityInfo
	SeverityLog
	SeverityWarning
	SeverityError
)

// DefaultSeverity is the classification of a log body that contains no
// recognized marker.
const DefaultSeverity = SeverityInfo

type severityInfo struct {
	name   string
	marker string
	color  string
}

// Display colors: red for errors, orange for warnings, dark green for
// everything informational.
const (
	colorError   = "#FF0000"
	colorWarning = "#E56717"
	colorNotice  = "#006400"
)

// severityTable is indexed by rank and is the single source of truth for
// names, marker strings, and display colors.
var severityTable = [...]severityInfo{
	SeverityQA:      {name: "QA", marker: "QA", color: colorNotice},
	SeverityInfo:    {name: "Info", marker: "INFO", color: colorNotice},
	SeverityLog:     {name: "Log", marker: "LOG", color: colorNotice},
	SeverityWarning: {name: "Warning", marker: "WARN", color: colorWarning},
	SeverityError:   {name: "Error", marker: "ERROR", color: colorError},
}

func (s Severity) known() bool {
	return s >= SeverityQA && s <= SeverityError
}

// String returns the display name, e.g. "Warning".
func (s Severity) String() string {
	if !s.known() {
		return "Unknown"
	}
	return severityTable[s].name
}

// Marker returns the literal token introducing a section of this class,
// e.g. "WARN".
func (s Severity) Marker() string {
	if !s.known() {
		return ""
	}
	return severityTable[s].marker
}

// Color returns the default display color as a hex string.
func (s Severity) Color() string {
	if !s.known() {
		return severityTable[DefaultSeverity].color
	}
	return severityTable[s].color
}

// ParseMarker maps a marker token to its severity. The match is
// case-sensitive, as Portage writes markers.
func ParseMarker(marker string) (Severity, bool) {
	for rank, info := range severityTable {
		if info.marker == marker {
			return Severity(rank), true
		}
	}
	return DefaultSeverity, false
}

// Severities lists all severities in rank order, lowest first. Callers use
// it to build display tables and sort keys.
func Severities() []Severity {
	all := make([]Severity, len(severityTable))
	for rank := range severityTable {
		all[rank] = Severity(rank)
	}
	return all
}
