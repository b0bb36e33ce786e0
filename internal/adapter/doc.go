// Package adapter issues outbound HTTP requests described by a method, URL,
// and dynamic payload.
//
// GET payloads are flattened into URL query parameters; POST, PUT, and
// DELETE payloads are sent as a compact JSON body. The dispatcher performs
// no retries and no response parsing: any HTTP response, 4xx/5xx included,
// is returned as (status code, body text) and left to the caller.
package adapter
