// Package errors provides standardized, module-scoped error constructors.
//
// Every error built here is a *error.Error tagged with a module identifier
// (fixedstr, config, scenario, cli) and the failing operation:
//
//	err := errors.OutOfRange(errors.ModuleFixedstr, "TryRemovePrefix", 9, 0, 4)
//	err.Operation()        // "fixedstr.TryRemovePrefix"
//	err.Detail("module")   // "fixedstr", true
package errors
