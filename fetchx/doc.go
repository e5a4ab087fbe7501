// Package fetchx provides an HTTP adapter for the outcome library.
//
// Get and Do execute a request through a standard http.Client and settle
// it into an outcome.Result: transport errors become the NetworkError
// variant, response status codes are mapped by a user-provided classifier,
// and successful JSON bodies are decoded into the payload type.
package fetchx
