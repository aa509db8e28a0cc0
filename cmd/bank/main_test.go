package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestCreateApp(t *testing.T) {
	require.NoError(t, fx.ValidateApp(CreateApp(strings.NewReader(""), &bytes.Buffer{})))
}

func TestCreateApp_Session(t *testing.T) {
	t.Setenv("CREDENTIAL_HASH_COST", "4")

	var out bytes.Buffer
	in := strings.NewReader(strings.Join([]string{
		"1", "Alice", "1234", "1234",
		"1", "50",
		"3",
		"6",
		"0",
	}, "\n") + "\n")

	app := fxtest.New(t, CreateApp(in, &out))
	app.RequireStart()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 0, sig.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("console session did not finish")
	}
	app.RequireStop()

	assert.Contains(t, out.String(), "Account created successfully!")
	assert.Contains(t, out.String(), "Deposited: $50.00")
	assert.Contains(t, out.String(), "Balance: $50.00")
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye!\n"))
}
