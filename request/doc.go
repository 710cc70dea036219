// Package request builds pre-configured request callers by composing a
// request primitive with method binding and params/headers transforms.
//
// Data flows one way: Builder -> adapter -> primitive.
//
//	// Bind a method and a params transform around any primitive.
//	get := request.CreateAdapter(send, http.MethodGet, request.DefaultParams, nil)
//	get(ctx, "https://api.example.com/items", nil, request.Values{"page": 2}, nil)
//	// send receives params {"page": 2, "bust": <unix millis>}
//
//	// Builders leave only the method free.
//	post := request.MakePrivateRequester(http.MethodPost)
//	post(ctx, "/orders", order, nil, nil)
//	// params carry "bust", headers carry a fresh "Authorization"
//
// The package primitive, Request, performs no transport of its own: it
// forwards every call to the hook installed with SetSend.
package request
