// Package marklogic implements a connector that publishes documents to a
// MarkLogic server through its REST extension.
//
// # Architecture
//
// The connector follows the driven port pattern defined in [driven.Publisher].
// It comprises the following components:
//
//   - Connector: runs one publish (PUT) or unpublish (DELETE) per call
//   - URI builder: http://{host}:{port}/alfrescopub/{publish|unpublish}?uri={id}
//   - Basic auth transport: adds the technical account, scoped to host:port
//   - Payload: reads file-backed documents in place, copies others to a temp file
//   - RateLimiter: optional process-wide request throttle
//
// # Outcomes
//
// Publish succeeds only on 204 No Content and unpublish only on 200 OK.
// Any other status is a [domain.RemoteRejectionError].
// Connection and I/O failures are a [domain.TransportError], and requests
// that cannot be built are a [domain.RequestBuildError]. Nothing is retried.
//
// # Concurrency
//
// A Connector is safe for concurrent use. Its only shared state is the
// read-only configuration, the HTTP transport and the rate limiter.
package marklogic
