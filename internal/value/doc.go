// Package value converts between the business-data service's tagged-union
// wire Value and native Go values.
//
// Absence is never an error: a Value without payload decodes to nil (or false
// for BOOLEAN), and input of the wrong shape encodes to a Value of the
// requested kind without payload.
package value
