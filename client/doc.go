// Package client implements the request-dispatch pipeline for the search
// service: it merges per-call parameters with client-wide defaults,
// rotates requests across the cluster's addresses round robin, executes
// them over HTTP, and classifies the raw result through the responses
// package.
//
// # Basic usage
//
//	c, err := client.New(client.Config{
//	    Addresses: []string{"http://node1:9200", "http://node2:9200"},
//	})
//	ping, err := c.Ping(ctx)
//
// Typed operations are either methods on Client or, where the response
// is generic over the document type, package-level functions:
//
//	resp, err := client.Search[Article](ctx, c, "articles", query)
//	for _, doc := range resp.Documents() {
//	    ...
//	}
//
// # Execution modes
//
// Every operation is available in a blocking and a scheduled-task form
// through the RequestBuilder. Send blocks until the typed outcome is
// available; Submit schedules the call on the client's Executor and
// returns a cancellable, awaitable Task:
//
//	task, err := client.Request[responses.PingResponse](c, requests.Ping()).Submit(ctx)
//	resp, err := task.Wait(ctx)
//
// Both modes run the same parameter resolution and classification code;
// only the scheduling differs.
//
// # What the pipeline does not do
//
// There are no retries, no timeout enforcement and no response caching
// here. Timeouts belong to the underlying *http.Client, retry and
// backoff policy to the caller.
package client
