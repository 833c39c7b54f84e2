// Package dogapi fetches random dog image URLs from the dog.ceo API.
//
// # Overview
//
// The package owns the single outbound call the gallery makes:
//
//	GET https://dog.ceo/api/breeds/image/random/10
//
// The response body has the shape:
//
//	{"message": ["https://images.dog.ceo/...jpg", ...], "status": "success"}
//
// Only "message" is consumed; "status" is ignored, and any non-2xx HTTP status
// is a failure regardless of body.
//
// # Error Handling
//
// Every failure is reported as a *FetchError and matches ErrFetchFailed via
// errors.Is. Three causes collapse into that one type:
//
//   - KindTransport: DNS, refused connections, timeouts, cancellation
//   - KindStatus: non-2xx responses
//   - KindMalformed: bodies that are not JSON or lack a message list
//
// FetchError.Message returns the text shown to the user. Transport failures
// surface the transport error verbatim; the other kinds use
// "Failed to fetch dogs".
//
// # Retries
//
// None. The resty client is built with a zero retry count and each
// FetchImages call issues exactly one request.
//
// # Usage Example
//
//	client, err := dogapi.NewClient(dogapi.Options{Timeout: 5 * time.Second})
//	if err != nil {
//		return err
//	}
//	images, err := client.FetchImages(ctx)
//	if err != nil {
//		fmt.Println(dogapi.UserMessage(err))
//	}
package dogapi
