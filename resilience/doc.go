// Package resilience provides call-shaping decorators.
//
// Throttle coalesces rapid repeated calls into at most one invocation per
// window, with optional leading and trailing edges:
//
//	th := resilience.NewThrottle(resilience.DefaultThrottleConfig("search"), func(q string) []Result {
//	    return search(q)
//	})
//	th.Call("go") // invoked immediately
//	th.Call("gop") // coalesced, "gop" runs when the window closes
package resilience
