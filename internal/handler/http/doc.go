// Package http implements the REST transport of the retail API.
//
// Every route is assembled from the same pieces, in this order: bearer token
// verification, a scope check against the token's permissions, the
// validation gate for the route's schema, and finally the handler. Handlers
// read the already normalized request from the context and reply through the
// render package, so a client always receives JSON or XML depending on its
// Accept header, errors included.
package http
