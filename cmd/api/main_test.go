package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrate_RequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"migrate", "--seed"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	assert.ErrorContains(t, err, "DB_DSN is not set")
}

func TestRoot_BadConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", "vetdesk.ini"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}
