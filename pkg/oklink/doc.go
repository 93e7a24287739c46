// Package oklink provides the public types of the OKLink explorer API client.
//
// A Client is created with okclient.New and exposes one typed client per API
// family plus the raw dispatcher:
//
//	client, err := okclient.New(&oklink.Config{Keys: []string{key}})
//	if err != nil {
//		return err
//	}
//
//	result, err := client.Blockchain().GetInfo(ctx, "ETH")
//	if err != nil {
//		return err // *oklink.TransportError
//	}
//
//	chains, err := result.GetOrThrow() // *oklink.DomainError when code != "0"
//
// Every call returns a Result carrying the upstream code, message and payload.
// A non-zero code is not an error by itself: callers either inspect IsOk, Code
// and Msg, or use GetOrThrow.
//
// Family results carry a struct-tag schema; Validate and IsValid check the
// decoded records against it on demand.
package oklink

//go:generate go run ../../cmd/oklink-gen --table endpoints/endpoints.yaml --api endpoints_gen.go --client ../../internal/client/endpoints_gen.go
