package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ostree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *ostree.Tree[int] {
	tree := ostree.NewOrdered[int]()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(k)
	}
	return tree
}

func TestPrintSideways(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ostree.console")
	defer teardown()

	var buf bytes.Buffer
	err := Print(&buf, sample(), &Config{Indent: 4, LineWidth: 40})
	require.NoError(t, err)
	assert.Equal(t, "        4*\n    3\n2\n    1\n", buf.String())
}

func TestPrintWithSizes(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, sample(), &Config{Indent: 2, ShowSize: true})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "2 #4", lines[2])
	assert.Equal(t, "  3 #2", lines[1])
}

func TestPrintColored(t *testing.T) {
	var buf bytes.Buffer
	err := Print(&buf, sample(), &Config{Color: true})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "*")
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, ostree.NewOrdered[string](), &Config{}))
	assert.Equal(t, "(empty)\n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestPrintReportsWriteErrors(t *testing.T) {
	err := Print(failingWriter{}, sample(), &Config{})
	assert.ErrorIs(t, err, errWrite)
}

func TestTruncate(t *testing.T) {
	ctx := uax11.LatinContext
	assert.Equal(t, "hello", truncate("hello", 5, ctx))
	assert.Equal(t, "hel…", truncate("hello", 4, ctx))
	assert.Equal(t, "h", truncate("hello", 0, ctx))
	assert.Equal(t, "中文", truncate("中文", 4, ctx))
	assert.Equal(t, "中…", truncate("中文", 3, ctx))
}

func TestPrintWideKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ostree.console")
	defer teardown()
	//
	grapheme.SetupGraphemeClasses()
	tree := ostree.NewOrdered[string]()
	tree.Insert("中文字符测试中文字符测试")
	tree.Insert("中文字符测试中文字符测试甲")
	var buf bytes.Buffer
	err := Print(&buf, tree, &Config{LineWidth: 10, Indent: 2, Context: uax11.LatinContext})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  中文字…*", lines[0])
	assert.Equal(t, "中文字符…", lines[1])
	for _, line := range lines {
		line = strings.TrimSuffix(line, redMarker)
		width := uax11.StringWidth(grapheme.StringFromString(line), uax11.LatinContext)
		assert.LessOrEqual(t, width, 10, "line %q", line)
	}
}

func TestConfigFromTerminal(t *testing.T) {
	config := ConfigFromTerminal()
	require.NotNil(t, config)
	assert.GreaterOrEqual(t, config.LineWidth, 10)
	assert.Equal(t, defaultIndent, config.Indent)
}
