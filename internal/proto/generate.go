// Package proto holds the generated EcoTracker gRPC contract. The source is
// api/ecotracker/v1/ecotracker.proto.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/ecotracker --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/ecotracker ecotracker/v1/ecotracker.proto
