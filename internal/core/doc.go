// Package core maps console selections to creators.
//
// Each demo program owns one [Registry] built at package init from an
// ordered list of entries:
//
//	var platforms = core.NewRegistry("platform",
//	    core.Entry[Factory]{Key: "windows", New: func() Factory { return WindowsFactory{} }},
//	    core.Entry[Factory]{Key: "mac", New: func() Factory { return MacFactory{} }},
//	)
//
// [Registry.Lookup] trims and lower-cases the selection before matching.
// A selection with no entry yields an [UnsupportedSelectionError], which
// matches [ErrUnsupportedSelection] with errors.Is and names the offending
// value. Entry points decide whether that failure aborts the process or is
// reported with [FormatUserError].
package core
