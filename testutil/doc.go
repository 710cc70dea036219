// Package testutil provides test doubles for code built on reqkit.
//
// Recorder captures every call reaching a request primitive:
//
//	func TestCheckout(t *testing.T) {
//	    rec := testutil.Install(t) // hooks request.Default, restored on cleanup
//	    request.PrivatePost(ctx, "/orders", order, nil, nil)
//
//	    call, _ := rec.Last()
//	    if call.Headers["Authorization"] == nil { ... }
//	}
//
// A Recorder can also be passed anywhere a request.Func is expected via
// rec.Send.
package testutil
