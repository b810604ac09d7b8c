// Package proto holds the generated wire types and gRPC stubs of the
// timeline service.
package proto

//go:generate protoc --proto_path=. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative timeline.proto
