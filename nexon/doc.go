// Package nexon provides the core client for the Nexon Open API.
//
// The package splits responsibilities the way the API itself does:
// Client dispatches authenticated HTTP requests, Response wraps one
// completed exchange, and the shape/schema machinery converts JSON
// bodies into validated typed values. Game resource packages (hit2,
// maplestory) build endpoint methods on top.
//
// # Shapes
//
// Every request names the shape its response body should be parsed
// into. Shapes form a closed set of handling categories:
//
//	nexon.None()            no body expected
//	nexon.Text()            body text verbatim, no JSON parsing
//	nexon.Binary()          raw bytes wrapped in a BinaryContent
//	nexon.RawResponse()     the untouched *http.Response
//	nexon.Any()             decoded JSON, completely unvalidated
//	nexon.Model(schema)     a nominal model validated against schema
//	nexon.SequenceOf(e)     an ordered list
//	nexon.MappingOf(v)      an object with uniform values
//	nexon.UnionOf(vs...)    one of several variants
//
// # Validation modes
//
// A client constructed with WithStrictValidation validates every model
// field and reports all offending paths at once. Without it,
// construction is best-effort: unknown fields are preserved (see
// ExtraFields), unambiguous coercions are applied, and only a body
// that cannot be read as the required container at all is an error.
//
// # Usage
//
//	client, err := nexon.NewClient("", apiKey, logger,
//		nexon.WithStrictValidation(),
//		nexon.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := nexon.Get[nexon.Ocid](ctx, client, "maplestory/v1/id",
//		url.Values{"character_name": {name}}, nexon.OcidShape, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ocid, err := resp.Parse()
//
// Parsing is lazy and memoized: the body is decoded on the first Parse
// call and the typed result is cached for later calls.
//
// # Errors
//
// Recoverable parsing failures surface as *ValidationError carrying the
// offending response and body. Non-2xx API responses surface as
// *APIError with the vendor error code. ErrInvalidShape wraps internal
// invariant violations that indicate misuse, not bad server data.
package nexon
