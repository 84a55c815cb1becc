package server

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Request field validation helpers, grounded on
// original_source/shared/src/grpc_error.rs. Every RPC handler validates its
// envelope at the edge (§4.I step 1) before touching the registry.

func missingField(field string) error {
	return status.Errorf(codes.InvalidArgument, "%s is required", field)
}

func requireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return missingField(field)
	}
	return nil
}

func requireNonNegative(field string, value int32) error {
	if value < 0 {
		return status.Errorf(codes.InvalidArgument, "%s must not be negative", field)
	}
	return nil
}
