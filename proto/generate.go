// Package proto holds the service definitions. Generated code lives under
// gen/proto and is not checked in.
package proto

//go:generate protoc --proto_path=. --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative documents/v1/documents.proto
