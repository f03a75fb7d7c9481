package recording

import (
	"github.com/rowlab/rowperf/analysis"
	"github.com/rowlab/rowperf/model"
)

// RecordRun stores the full tick-by-tick trace of a simulation run in the
// row_samples table.
func RecordRun(rec DataRecorder, samples []model.Sample) {
	rec.CreateTable("row_samples", model.Sample{})

	for _, s := range samples {
		rec.InsertData("row_samples", s)
	}

	rec.Flush()
}

// RecordCurve stores a closed-form (x, y) curve under the given table name.
func RecordCurve(rec DataRecorder, tableName string, points []analysis.Point) {
	rec.CreateTable(tableName, analysis.Point{})

	for _, p := range points {
		rec.InsertData(tableName, p)
	}

	rec.Flush()
}
