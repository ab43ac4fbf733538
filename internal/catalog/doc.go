// Package catalog loads vehicle catalogs from ';'-separated CSV files.
//
// # File Format
//
// The first row is a header and is always ignored. Every data row has seven
// columns:
//
//	kind;brand;seats;photo;body;carrying;extra
//	car;Toyota;5;photo1.jpg;;3.5;
//	truck;Volvo;;t.png;2x3x4;12.0;
//	spec_machine;Liebherr;;crane.jpg;;40;tower crane
//
// # Loading
//
//	loader := catalog.NewLoader(catalog.DefaultConfig(), nil)
//	vehicles, err := loader.Load("cars.csv")
//
// Rows with the wrong number of fields, an unknown kind, a bad number or a
// malformed truck body spec are skipped. The skip decision for a single row
// is made by ParseRow and is visible in its RowResult. Only failures to open,
// read or decode the file are returned as errors (*LoadError).
//
// # Diagnostics
//
// Pass an event callback to NewLoader to receive one LevelVerbose event per
// skipped row and a LevelInfo summary per file.
package catalog
