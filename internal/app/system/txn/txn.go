// internal/app/system/txn/txn.go

// Package txn wraps multi-document MongoDB transactions with a fallback for
// deployments that cannot run them (standalone mongod, old servers).
//
// Callers pass a function that performs all writes through the supplied
// context. On replica sets the writes commit or abort as a unit; when the
// server reports transactions unsupported, the function is re-run once on
// the plain context so development setups still work. The cascade is then
// sequential rather than atomic, which matches what a standalone server can
// offer at all.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction runs fn inside a MongoDB multi-document transaction.
// If the deployment does not support transactions, fn is re-run once
// outside a session.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(ctx context.Context) error) error {
	session, err := client.StartSession()
	if err != nil {
		if IsNotSupported(err) {
			return fn(ctx)
		}
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		return fn(ctx)
	}
	return err
}

// Server error codes that indicate the deployment cannot run transactions.
//
//	20  IllegalOperation (standalone: "Transaction numbers are only allowed…")
//	51  command not supported in this configuration
//	263 OperationNotSupportedInTransaction
var notSupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err means the server cannot run
// multi-document transactions (as opposed to a transaction that failed).
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// A labeled transient failure is a transaction that can be retried,
		// not a deployment that lacks transactions.
		if cmdErr.HasErrorLabel("TransientTransactionError") {
			return false
		}
		return notSupportedCodes[cmdErr.Code]
	}

	// Drivers and proxies sometimes surface the condition as plain text.
	// A single keyword ("transaction failed") is too weak a signal; require
	// two distinct ones before treating the error as "unsupported".
	msg := strings.ToLower(err.Error())
	hits := 0
	for _, kw := range []string{"transaction", "session", "replica set", "not supported", "illegal operation"} {
		if strings.Contains(msg, kw) {
			hits++
		}
	}
	return hits >= 2
}
