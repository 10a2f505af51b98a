package syncdata

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwos/syncdatagen/errors"
)

const scenario = `# Synced between processes
Alpha : WebCore::AlphaData
Beta : BetaData [Conditional=ENABLE(BETA)]
Gamma : GammaData [DocumentSyncData]
`

func TestParseLine(t *testing.T) {
	tests := []struct {
		line     string
		expected *Data
	}{
		{
			line:     "Alpha : WebCore::AlphaData",
			expected: &Data{Name: "Alpha", Namespace: "WebCore", Type: "AlphaData", VariantIndex: -1},
		},
		{
			line: "  Beta : BetaData [Conditional=ENABLE(BETA)]  ",
			expected: &Data{Name: "Beta", Type: "BetaData",
				Conditional: "ENABLE(BETA)", VariantIndex: -1},
		},
		{
			line: "Gamma : WebCore::GammaData [DocumentSyncData Header=<WebCore/GammaData.h>]",
			expected: &Data{Name: "Gamma", Namespace: "WebCore", Type: "GammaData",
				Location: DocumentSyncData, Header: "<WebCore/GammaData.h>", VariantIndex: -1},
		},
		{
			line: `Delta : DeltaData [Header="DeltaData.h" Conditional=PLATFORM(COCOA)]`,
			expected: &Data{Name: "Delta", Type: "DeltaData",
				Header: `"DeltaData.h"`, Conditional: "PLATFORM(COCOA)", VariantIndex: -1},
		},
		{
			line:     "Nested : WTF::Detail::Value",
			expected: &Data{Name: "Nested", Namespace: "WTF::Detail", Type: "Value", VariantIndex: -1},
		},
		{
			line:     "Left : Middle : Right",
			expected: &Data{Name: "Left : Middle", Type: "Right", VariantIndex: -1},
		},
		{
			line:     "Empty : EmptyData []",
			expected: &Data{Name: "Empty", Type: "EmptyData", VariantIndex: -1},
		},
		{line: "# Alpha : AlphaData"},
		{line: "   # Alpha : AlphaData"},
		{line: ""},
		{line: "Alpha:AlphaData"},
		{line: "just some words"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			d, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseLineInvalidOption(t *testing.T) {
	for _, line := range []string{
		"Alpha : AlphaData [Foo]",
		"Alpha : WebCore::AlphaData [DocumentSyncData Foo]",
		"Alpha : AlphaData [conditional=ENABLE(ALPHA)]",
	} {
		d, err := ParseLine(line)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, errors.ErrInvalidOption, line)
		assert.True(t, errors.IsErrorInput(err))
	}
}

func TestParse(t *testing.T) {
	datas, err := Parse(strings.NewReader(scenario + "not a record\n"))
	require.NoError(t, err)
	require.Len(t, datas, 3)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(datas))
	assert.Equal(t, "WebCore::AlphaData", datas[0].FullyQualifiedType())
	assert.Equal(t, "BetaData", datas[1].FullyQualifiedType())
	assert.True(t, datas[1].IsConditional())
	assert.True(t, datas[2].IsDocumentSyncData())

	_, err = Parse(strings.NewReader("Alpha : AlphaData\nBeta : BetaData [Foo]\n"))
	assert.ErrorIs(t, err, errors.ErrInvalidOption)
	assert.ErrorContains(t, err, "line 2")
	assert.ErrorContains(t, err, "'Foo'")
}

func TestParseFile(t *testing.T) {
	_, err := ParseFile("testdata/missing.in")
	assert.True(t, errors.IsErrorNotExist(err))
}

func TestOrder(t *testing.T) {
	datas, err := Parse(strings.NewReader(scenario))
	require.NoError(t, err)

	ordered, err := Order(datas, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Gamma", "Alpha"}, names(ordered))
	for i, d := range ordered {
		assert.Equal(t, i, d.VariantIndex)
	}
	/* input order is kept */
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(datas))
}

func TestOrderInvariants(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		switch i % 3 {
		case 0:
			fmt.Fprintf(&b, "Item%d : NS%d::Type%d [Conditional=ENABLE(ITEM%d)]\n", i, 20-i, i, i)
		case 1:
			fmt.Fprintf(&b, "Item%d : Type%d [DocumentSyncData]\n", i, 20-i)
		default:
			fmt.Fprintf(&b, "Item%d : NS%d::Type%d\n", i, i%5, i)
		}
	}
	datas, err := Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	ordered, err := Order(datas, ByFullyQualifiedType)
	require.NoError(t, err)
	require.Len(t, ordered, len(datas))

	seen := make(map[int]bool)
	for i, d := range ordered {
		assert.Equal(t, i, d.VariantIndex)
		seen[d.VariantIndex] = true
		if i == 0 {
			continue
		}
		prev := ordered[i-1]
		if prev.IsConditional() == d.IsConditional() {
			assert.LessOrEqual(t, prev.FullyQualifiedType(), d.FullyQualifiedType())
		} else {
			assert.True(t, prev.IsConditional(), "conditional records go first")
		}
	}
	assert.Len(t, seen, len(datas))
}

func TestOrderComparator(t *testing.T) {
	datas, err := Parse(strings.NewReader(scenario))
	require.NoError(t, err)

	byName := func(a, b *Data) int { return strings.Compare(b.Name, a.Name) }
	ordered, err := Order(datas, byName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Gamma", "Alpha"}, names(ordered))

	ordered, err = Order(datas[:2], byName)
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Alpha"}, names(ordered))
	assert.Equal(t, 1, ordered[1].VariantIndex)
}

func TestOrderNoUnconditional(t *testing.T) {
	datas, err := Parse(strings.NewReader(
		"Beta : BetaData [Conditional=ENABLE(BETA)]\nDelta : DeltaData [Conditional=ENABLE(DELTA)]\n"))
	require.NoError(t, err)
	_, err = Order(datas, nil)
	assert.ErrorIs(t, err, errors.ErrNoUnconditional)

	_, err = Order(nil, nil)
	assert.ErrorIs(t, err, errors.ErrNoUnconditional)
}

func TestValidate(t *testing.T) {
	datas, err := Parse(strings.NewReader(scenario))
	require.NoError(t, err)
	assert.NoError(t, Validate(datas))

	datas, err = Parse(strings.NewReader(scenario +
		"Alpha : OtherData\nGamma : GammaData\nAlpha : ThirdData\n"))
	require.NoError(t, err)
	err = Validate(datas)
	assert.ErrorIs(t, err, errors.ErrDuplicateName)
	assert.EqualError(t, err, "input error: duplicate name: Alpha, Gamma")
}

func TestSortedHeaders(t *testing.T) {
	datas := []*Data{
		{Name: "A", Header: `"Zeta.h"`},
		{Name: "B", Header: "<wtf/Alpha.h>"},
		{Name: "C"},
		{Name: "D", Header: `"Zeta.h"`},
	}
	assert.Equal(t, []string{`"Zeta.h"`, "<wtf/Alpha.h>"}, SortedHeaders(datas))
	assert.Equal(t, []string{`"Zeta.h"`, "<variant>", "<wtf/Alpha.h>"}, SortedHeaders(datas, "<variant>"))
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "gamma", Data{Name: "Gamma"}.FieldName())
	assert.Equal(t, "isAutofocusProcessed", Data{Name: "IsAutofocusProcessed"}.FieldName())
	assert.Equal(t, "", Data{}.FieldName())
}

func names(datas []*Data) []string {
	var nn []string
	for _, d := range datas {
		nn = append(nn, d.Name)
	}
	return nn
}
