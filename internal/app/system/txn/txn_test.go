package txn

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNotSupported(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"generic error", errors.New("some random error"), false},
		{
			"command error code 20",
			mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member"},
			true,
		},
		{
			"command error code 51",
			mongo.CommandError{Code: 51, Message: "Illegal operation"},
			true,
		},
		{
			"command error code 263",
			mongo.CommandError{Code: 263, Message: "Cannot run in a multi-document transaction"},
			true,
		},
		{
			"other command error code",
			mongo.CommandError{Code: 11000, Message: "duplicate key"},
			false,
		},
		{
			"wrapped command error code 20",
			fmt.Errorf("deactivate cascade: %w",
				mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member"}),
			true,
		},
		{
			"wrapped command error with transaction wording",
			fmt.Errorf("commit: %w",
				mongo.CommandError{Code: 251, Message: "transaction aborted, session expired"}),
			false,
		},
		{
			"transient transaction label",
			mongo.CommandError{Code: 20, Message: "write conflict", Labels: []string{"TransientTransactionError"}},
			false,
		},
		{
			"transaction plus replica set keywords",
			errors.New("transaction failed because this is not a replica set member"),
			true,
		},
		{
			"session plus not supported keywords",
			errors.New("session operations are not supported on this server"),
			true,
		},
		{
			"single keyword is not enough",
			errors.New("transaction failed"),
			false,
		},
		{
			"transaction plus session keywords",
			errors.New("cannot start transaction in current session state"),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotSupported(tt.err); got != tt.want {
				t.Errorf("IsNotSupported(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
