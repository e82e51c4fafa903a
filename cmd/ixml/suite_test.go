package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ixml/internal/catalog"
)

func writeGrammar(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestRunCasePass(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, "doc.ixml", `doc = "a", "b".`)

	r := runCase(0, catalog.Case{Grammar: "doc.ixml", Input: "ab", Expect: "<doc>ab</doc>"}, dir)
	assert.Equal(t, outcomePass, r.outcome)
}

func TestRunCaseFailOnMismatch(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, "doc.ixml", `doc = "a", "b".`)

	r := runCase(0, catalog.Case{Grammar: "doc.ixml", Input: "ab", Expect: "<doc>zz</doc>"}, dir)
	assert.Equal(t, outcomeFail, r.outcome)
}

func TestRunCaseExpectedParseError(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, "doc.ixml", `doc = "a", "b".`)

	r := runCase(0, catalog.Case{Grammar: "doc.ixml", Input: "zz", Expect: catalog.ExpectError}, dir)
	assert.Equal(t, outcomePass, r.outcome)
}

func TestRunCaseUnexpectedParseError(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, "doc.ixml", `doc = "a", "b".`)

	r := runCase(0, catalog.Case{Grammar: "doc.ixml", Input: "zz", Expect: "<doc>ab</doc>"}, dir)
	assert.Equal(t, outcomeParseError, r.outcome)
}

func TestRunCaseGrammarFileMissing(t *testing.T) {
	dir := t.TempDir()
	r := runCase(0, catalog.Case{Grammar: "missing.ixml", Input: "ab", Expect: "<doc>ab</doc>"}, dir)
	assert.Equal(t, outcomeGrammarError, r.outcome)
}

func TestRunCaseSkip(t *testing.T) {
	r := runCase(0, catalog.Case{Skip: "not ready"}, "")
	assert.Equal(t, outcomeSkip, r.outcome)
	assert.Equal(t, "not ready", r.detail)
}

func TestRunCaseTodoDemotesFailure(t *testing.T) {
	dir := t.TempDir()
	writeGrammar(t, dir, "doc.ixml", `doc = "a", "b".`)

	r := runCase(0, catalog.Case{Grammar: "doc.ixml", Input: "ab", Expect: "<doc>zz</doc>", Todo: "known gap"}, dir)
	assert.Equal(t, outcomeTodo, r.outcome)
}
