package output

// JSON output payloads shared by commands.

// RecordInfo is a single student record.
type RecordInfo struct {
	Name string  `json:"name"`
	Mark float64 `json:"mark"`
}

// RowInfo is a report row: record plus derived letter grade.
type RowInfo struct {
	Name  string  `json:"name"`
	Mark  float64 `json:"mark"`
	Grade string  `json:"grade"`
}

// StatsOutput is the payload for the stats command.
type StatsOutput struct {
	Count   int        `json:"count"`
	Average float64    `json:"average"`
	Median  float64    `json:"median"`
	Highest RecordInfo `json:"highest"`
	Lowest  RecordInfo `json:"lowest"`
}

// ReportOutput is the payload for the report command.
type ReportOutput struct {
	Rows    []RowInfo    `json:"rows"`
	Summary *StatsOutput `json:"summary,omitempty"`
}

// GradeCountInfo is one bucket of the grade distribution.
type GradeCountInfo struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// DistributionOutput is the payload for the grades command.
type DistributionOutput struct {
	Counts []GradeCountInfo `json:"counts"`
	Total  int              `json:"total"`
}

// FilterSummary counts both sides of the pass/fail partition.
type FilterSummary struct {
	PassCount int `json:"pass_count"`
	FailCount int `json:"fail_count"`
}

// FilterOutput is the payload for the filter command.
type FilterOutput struct {
	Threshold float64       `json:"threshold"`
	Passing   []RecordInfo  `json:"passing"`
	Failing   []RecordInfo  `json:"failing"`
	Summary   FilterSummary `json:"summary"`
}

// ExportOutput is the payload for the export command.
type ExportOutput struct {
	File string `json:"file"`
	Rows int    `json:"rows"`
}

// LoadOutput describes a roster load.
type LoadOutput struct {
	File    string `json:"file"`
	Loaded  int    `json:"loaded"`
	Skipped int    `json:"skipped"`
}
