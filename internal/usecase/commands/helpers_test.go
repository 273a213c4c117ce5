//go:build unit

package commands_test

import "errors"

var assertErr = errors.New("collaborator failed")

func strPtr(s string) *string { return &s }
