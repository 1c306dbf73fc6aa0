package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"MediCare/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommandPrintsSnapshot(t *testing.T) {
	cmd := seedCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var snapshot database.Snapshot
	require.NoError(t, json.Unmarshal(out.Bytes(), &snapshot))
	assert.Len(t, snapshot.Departments, 5)
	assert.Len(t, snapshot.Users, 31)
	assert.Len(t, snapshot.Doctors, 10)
	assert.Len(t, snapshot.Patients, 20)
	assert.Len(t, snapshot.Appointments, 30)
	assert.Len(t, snapshot.Prescriptions, 10)
	assert.Len(t, snapshot.Bills, 10)
	assert.NotContains(t, out.String(), "password")
	assert.NotContains(t, out.String(), "$2a$")
}

func TestServeCommandHasPortFlag(t *testing.T) {
	cmd := serveCmd()
	flag := cmd.Flags().Lookup("port")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}
