package render

import "net/http"

// Format is the representation of a response body.
type Format int

const (
	// JSON is the default representation.
	JSON Format = iota
	// XML is selected only by an exact Accept match.
	XML
)

// Media types written to Content-Type.
const (
	JSONMediaType = "application/json"
	XMLMediaType  = "application/xml"
)

func (f Format) String() string {
	if f == XML {
		return "xml"
	}
	return "json"
}

// MediaType returns the Content-Type value for f.
func (f Format) MediaType() string {
	if f == XML {
		return XMLMediaType
	}
	return JSONMediaType
}

// Negotiate picks the format for an Accept header value. There is no
// q-value or wildcard handling.
func Negotiate(accept string) Format {
	if accept == XMLMediaType {
		return XML
	}
	return JSON
}

// FormatFromRequest negotiates the format of r.
func FormatFromRequest(r *http.Request) Format {
	return Negotiate(r.Header.Get("Accept"))
}

// Kind names the XML elements of a resource.
type Kind struct {
	Singular string
	Plural   string
}

var (
	ItemKind     = Kind{Singular: "item", Plural: "items"}
	OrderKind    = Kind{Singular: "order", Plural: "orders"}
	CustomerKind = Kind{Singular: "customer", Plural: "customers"}
	HealthKind   = Kind{Singular: "health", Plural: "health"}
)
