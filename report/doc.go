// Package report assembles the data behind CSV and PDF exports.
//
// A Report is everything an export document needs, already selected and
// aggregated: the selector pair, the headline summary, and the record
// table with source column headers. Byte layout is out of scope; the
// exporting collaborator owns encoding, rounding and unit formatting,
// and this package hands it raw numbers only.
//
//	rep, err := report.Build(ds, "Rabi", "2021", nil)
//	if err != nil {
//	    // invalid selector
//	}
//	preview := rep.Table.Head(10)
package report
