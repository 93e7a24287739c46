// Package okclient provides the primary entry point for constructing an
// OKLink explorer API client that implements the oklink.Client interface.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/oklink/pkg/oklink"
//	  "github.com/fivetwenty-io/oklink/pkg/okclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Unauthenticated, production host.
//	  cli, err := okclient.New(&oklink.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // With a pool of access keys; one is picked at random per call.
//	  cli, err = okclient.NewWithKeys("key-1", "key-2")
//	  if err != nil { log.Fatal(err) }
//
//	  result, err := cli.Blockchain().GetInfo(ctx, "ETH")
//	  if err != nil { log.Fatal(err) } // transport failure
//
//	  chains, err := result.GetOrThrow()
//	  if err != nil { log.Fatal(err) } // upstream code != "0"
//	  _ = chains
//	}
//
// # Retries
//
// The client sends exactly one request per call. Setting Config.RetryMax
// enables retries with exponential backoff for connection errors, 429 and 5xx
// responses.
package okclient
