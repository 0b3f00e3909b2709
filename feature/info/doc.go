// Package info serves the root documentation endpoint.
//
// GET / answers with the service name, version, the list of conversion endpoints and
// ready-to-use request examples.
package info
