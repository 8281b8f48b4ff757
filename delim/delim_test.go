package delim_test

import (
	"testing"

	"github.com/katalvlaran/hmatrix/delim"
	"github.com/katalvlaran/hmatrix/strval"
	"github.com/katalvlaran/hmatrix/xhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec_EmptyResetsToUninitialized(t *testing.T) {
	tbl := delim.ParseSpec("")
	assert.False(t, tbl.Initialized())
}

func TestParseSpec_HexEscape(t *testing.T) {
	tbl := delim.ParseSpec(" %09") // space and tab
	assert.True(t, tbl.Initialized())
	assert.True(t, tbl.IsDelim(' '))
	assert.True(t, tbl.IsDelim('\t'))
	assert.False(t, tbl.IsDelim('x'))
}

func TestParseSpec_TruncatedEscapeSilentlyTruncated(t *testing.T) {
	tbl := delim.ParseSpec("ab%")
	assert.True(t, tbl.Initialized())
	assert.True(t, tbl.IsDelim('a'))
	assert.True(t, tbl.IsDelim('b'))
}

func TestSymbolize_Tokenization(t *testing.T) {
	tbl := delim.ParseSpec(" %09")
	s := strval.FromBytes([]byte("the  quick\tfox"), 0, 0, "")

	out, err := delim.Symbolize(tbl, s)
	require.NoError(t, err)

	assert.Equal(t, strval.KindTokens, out.Kind)
	assert.Equal(t, 3, out.Len())
	assert.Equal(t, []uint64{
		xhash.Hash64([]byte("the")),
		xhash.Hash64([]byte("quick")),
		xhash.Hash64([]byte("fox")),
	}, out.Tokens)
}

func TestSymbolize_IdempotentOnTokens(t *testing.T) {
	tbl := delim.ParseSpec(" ")
	in := strval.StringValue{Kind: strval.KindTokens, Tokens: []uint64{1, 2, 3}}

	out, err := delim.Symbolize(tbl, in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSymbolize_NotInitialized(t *testing.T) {
	var tbl delim.Table
	_, err := delim.Symbolize(tbl, strval.FromBytes([]byte("abc"), 0, 0, ""))
	assert.ErrorIs(t, err, delim.ErrNotInitialized)
}
