// Package commands implements the partshop CLI: the HTTP/gRPC server and
// offline catalog and cart commands that share the same services.
package commands
