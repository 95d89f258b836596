// This package provides a set of structs and functions which are used
// to build a consolidated report about a single IP address.
//
// dossier is a core of the ipdossier project. The rest of the
// application shows how to use this library: how to configure
// providers, how to log their failures, how to print a report.
//
// Dossier is a main entity of this package. It asks every provider
// about a target concurrently, waits for all of them and merges their
// observations into a Record. Each canonical field has a fixed
// precedence: the first provider which has reported a value wins. If
// nobody knows a value, a field is set to AbsentMarker.
//
// If a merged record has a known country code, Dossier asks a
// knowledge graph about this country and appends its fields to the end
// of the record.
package dossier
