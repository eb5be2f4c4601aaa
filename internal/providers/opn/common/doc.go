// Package common holds the helpers shared by the OPN provider modules.
//
// OPN parameters arrive either as objects or as arrays:
//
//	{"x": {"a": 1, "b": -2}}
//	{"x": [1, -2]}
//
// Results carry the value both as a pair object and as text:
//
//	{"result": {"a": 1, "b": -2}, "text": "(1, -2)"}
//
// Failed operations return a Result with Success=false, the error message,
// and Data["kind"] set to the opn error kind (singularity, domain, ...).
package common
