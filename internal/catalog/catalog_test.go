package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ixml/internal/catalog"
)

func TestParseSingleCase(t *testing.T) {
	src := `
grammar: doc.ixml
input: "ab"
expect: "<doc>ab</doc>"
---
`
	cat, err := catalog.Parse(src)
	require.NoError(t, err)
	require.Len(t, cat.Cases, 1)
	assert.Equal(t, "doc.ixml", cat.Cases[0].Grammar)
	assert.Equal(t, "ab", cat.Cases[0].Input)
	assert.Equal(t, "<doc>ab</doc>", cat.Cases[0].Expect)
}

func TestParseMultipleCasesShareDefaultGrammar(t *testing.T) {
	src := `
grammar: doc.ixml
input: "ab"
expect: "<doc>ab</doc>"
---
input: "ba"
expect: error
---
`
	cat, err := catalog.Parse(src)
	require.NoError(t, err)
	require.Len(t, cat.Cases, 2)
	assert.Equal(t, "doc.ixml", cat.Cases[0].Grammar)
	assert.Equal(t, "doc.ixml", cat.Cases[1].Grammar)
	assert.Equal(t, catalog.ExpectError, cat.Cases[1].Expect)
}

func TestParseTrailingCaseWithoutSeparator(t *testing.T) {
	src := `
grammar: doc.ixml
input: "ab"
expect: "<doc>ab</doc>"
`
	cat, err := catalog.Parse(src)
	require.NoError(t, err)
	require.Len(t, cat.Cases, 1)
}

func TestParseIgnoresComments(t *testing.T) {
	src := `
# a leading comment
grammar: doc.ixml
input: "ab"
expect: "<doc>ab</doc>"
---
`
	cat, err := catalog.Parse(src)
	require.NoError(t, err)
	require.Len(t, cat.Cases, 1)
}

func TestParseSkipAndTodoDirectives(t *testing.T) {
	src := `
grammar: doc.ixml
input: "zz"
expect: "<doc>zz</doc>"
skip: not implemented yet
---
input: "qq"
expect: "<doc>qq</doc>"
todo: known divergence
---
`
	cat, err := catalog.Parse(src)
	require.NoError(t, err)
	require.Len(t, cat.Cases, 2)
	assert.Equal(t, "not implemented yet", cat.Cases[0].Skip)
	assert.Equal(t, "known divergence", cat.Cases[1].Todo)
}
