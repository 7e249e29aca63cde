// Package utils provides small helpers shared by the transport layers:
// response writers, trace identifier generation and the resty client
// wrapper used by the health adapter.
package utils
