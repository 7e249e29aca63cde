// Package http implements the HTTP transport layer of InfoMilo.
//
// Requests are resolved against a fixed route table (see [ResolveRoute]);
// every path outside the table gets the 404 page. Trace ids, access logging
// and the CORS headers are applied to every response, the 404 included,
// before the request reaches the service layer.
package http
