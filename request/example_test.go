package request_test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kbukum/reqkit/request"
)

func ExampleCreateAdapter() {
	send := func(_ context.Context, method, endpoint string, _ any, params, _ request.Values) (any, error) {
		return fmt.Sprintf("%s %s page=%v", method, endpoint, params["page"]), nil
	}
	withPage := func(v request.Values) request.Values {
		out := request.Values{"page": 1}
		for k, val := range v {
			out[k] = val
		}
		return out
	}

	get := request.CreateAdapter(send, http.MethodGet, withPage, nil)
	res, _ := get(context.Background(), "/items", nil, nil, nil)
	fmt.Println(res)
	res, _ = get(context.Background(), "/items", nil, request.Values{"page": 3}, nil)
	fmt.Println(res)
	// Output:
	// GET /items page=1
	// GET /items page=3
}

func ExampleDefaultParams() {
	out := request.DefaultParams(request.Values{"bust": 1, "q": "go"})
	fmt.Println(out["bust"], out["q"])
	// Output: 1 go
}
