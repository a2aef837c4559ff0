package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := newRootCommand(&stdout)
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeRequest(t *testing.T, content string) string {
	file := filepath.Join(t.TempDir(), "request.json")
	require.Nil(t, os.WriteFile(file, []byte(content), 0666))
	return file
}

const footmenRequest = `{
	"ratings_list": [1900, 1500, 1400, 1400, 1400, 1400, 1300, 1100],
	"rds_list": [90, 90, 90, 90, 90, 90, 90, 90],
	"gamemode": "4on4",
	"constraints": "1+1+1+1+1+1+1+1"
}`

func TestBalanceCommand(t *testing.T) {
	//** Arrange
	file := writeRequest(t, footmenRequest)

	//** Act
	stdout, err := execute(t, "balance", "--file", file)

	//** Assert
	require.Nil(t, err)
	var output balanceOutput
	require.Nil(t, json.Unmarshal([]byte(stdout), &output))
	assert.Equal(t, "4v4", output.Mode)
	assert.Equal(t, []int{1, 1, 2, 2, 2, 2, 1, 1}, output.Teams)
}

func TestBalanceCommandYamlToFile(t *testing.T) {
	//** Arrange
	file := writeRequest(t, footmenRequest)
	out := filepath.Join(t.TempDir(), "teams.yaml")

	//** Act
	stdout, err := execute(t, "balance", "-f", file, "-o", out, "--format", "yaml")

	//** Assert
	require.Nil(t, err)
	assert.Empty(t, stdout)
	content, err := os.ReadFile(out)
	require.Nil(t, err)
	var output balanceOutput
	require.Nil(t, yaml.Unmarshal(content, &output))
	assert.Equal(t, []int{1, 1, 2, 2, 2, 2, 1, 1}, output.Teams)
}

func TestBalanceCommandErrors(t *testing.T) {
	file := writeRequest(t, footmenRequest)
	infeasible := writeRequest(t, `{"ratings_list": [1, 2, 3, 4], "rds_list": [90, 90, 90, 90], "gamemode": "2v2", "constraints": "3+1"}`)

	_, err := execute(t, "balance")
	assert.NotNil(t, err)

	_, err = execute(t, "balance", "--file", file, "--format", "xml")
	assert.NotNil(t, err)

	_, err = execute(t, "balance", "--file", filepath.Join(t.TempDir(), "missing.json"))
	assert.NotNil(t, err)

	_, err = execute(t, "balance", "--file", infeasible)
	assert.NotNil(t, err)
}

func TestSupersetCommand(t *testing.T) {
	scenarios := []struct {
		args       []string
		partitions int
	}{
		{[]string{"superset", "--mode", "3v3v3v3"}, 15400},
		{[]string{"superset", "--mode", "4v4"}, 35},
		{[]string{"superset", "--mode", "4v4", "--constraints", "3+1+1+1+1+1"}, 5},
		{[]string{"superset", "-m", "4v4", "-c", "4+1+1+1+1"}, 1},
	}

	for _, scenario := range scenarios {
		stdout, err := execute(t, scenario.args...)
		require.Nil(t, err, scenario.args)

		var output supersetOutput
		require.Nil(t, json.Unmarshal([]byte(stdout), &output))
		assert.Equal(t, scenario.partitions, output.Partitions, scenario.args)
		assert.Empty(t, output.Teams)
	}
}

func TestSupersetCommandList(t *testing.T) {
	stdout, err := execute(t, "superset", "--mode", "2v2", "--list", "--format", "yaml")
	require.Nil(t, err)

	var output supersetOutput
	require.Nil(t, yaml.Unmarshal([]byte(stdout), &output))
	assert.Equal(t, [][]int{{1, 1, 2, 2}, {1, 2, 1, 2}, {1, 2, 2, 1}}, output.Teams)
}
