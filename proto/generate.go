// Package providerv1 holds the generated gRPC bindings for the provider
// bridge. Run `go generate ./proto` after editing provider.proto.
package providerv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative provider.proto
