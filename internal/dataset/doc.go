// Package dataset loads the two input tables of the growth pipeline:
// the GNAF property to mesh-block mapping and the sale transactions.
//
// # Supported Formats
//
// Inputs are read from CSV or Excel files, selected by extension:
//
//	.csv          encoding/csv, header row required
//	.xlsx, .xls   first sheet of the workbook, header row required
//
// Columns are resolved by header name (case-insensitive, trimmed), so
// column order in the file does not matter. Extra columns are ignored.
//
// # Strictness
//
// Loading is strict: a missing required column or a cell that does not
// parse as the declared column type (price, sale date) aborts the load
// with a schema error naming the file, column and row. Identifier
// columns are whitespace-trimmed but otherwise passed through; matching
// semantics (duplicates, empty identifiers) belong to the join stage.
//
// # Usage
//
//	loader := dataset.NewLoader(logger)
//	properties, err := loader.LoadProperties(ctx, "data/gnaf_properties.csv")
//	if err != nil {
//	    return err
//	}
//	transactions, err := loader.LoadTransactions(ctx, "data/transactions.csv")
package dataset
