package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParseSequence(t *testing.T) {
	out, err := runParse(`doc = "a", "b".`, "ab")
	require.NoError(t, err)
	assert.Equal(t, "<doc>ab</doc>", out)
}

func TestRunParseRejectsBadInput(t *testing.T) {
	_, err := runParse(`doc = "a", "b".`, "ba")
	assert.Error(t, err)
}

func TestRunParseRejectsBadGrammar(t *testing.T) {
	_, err := runParse(`doc = missing.`, "x")
	assert.Error(t, err)
}
