package marktext

import (
	"strings"
	"testing"
)

func TestParseBlocksNoDirective(t *testing.T) {
	blocks := ParseBlocks("just some text")
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].Align != AlignDefault || blocks[0].Text != "just some text" {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
}

func TestParseBlocksCenter(t *testing.T) {
	blocks := ParseBlocks("[justify:center]Hi[/justify]")
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].Align != AlignCenter || blocks[0].Text != "Hi" {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
}

func TestParseBlocksUnterminatedIsLiteral(t *testing.T) {
	input := "[justify:center]unterminated"
	blocks := ParseBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].Align != AlignDefault || blocks[0].Text != input {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
}

func TestParseBlocksUnknownKeywordIsLiteral(t *testing.T) {
	input := "[justify:middle]x[/justify]"
	blocks := ParseBlocks(input)
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].Align != AlignDefault || blocks[0].Text != input {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
}

func TestParseBlocksSurroundingText(t *testing.T) {
	blocks := ParseBlocks("before[justify:right]mid[/justify]after")
	want := []Block{
		{Align: AlignDefault, Text: "before"},
		{Align: AlignRight, Text: "mid"},
		{Align: AlignDefault, Text: "after"},
	}
	if len(blocks) != len(want) {
		t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(blocks), blocks)
	}
	for i, b := range blocks {
		if b != want[i] {
			t.Fatalf("block %d: got %+v want %+v", i, b, want[i])
		}
	}
}

func TestParseBlocksMultilineContent(t *testing.T) {
	blocks := ParseBlocks("[justify:left]line one\nline two\n[/justify]")
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %d", len(blocks))
	}
	if blocks[0].Align != AlignLeft || blocks[0].Text != "line one\nline two\n" {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
}

func TestParseBlocksDropsWhitespaceOnly(t *testing.T) {
	if blocks := ParseBlocks("[justify:center]   [/justify]"); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %+v", blocks)
	}
	if blocks := ParseBlocks("   \n\t"); len(blocks) != 0 {
		t.Fatalf("expected no blocks for blank input, got %+v", blocks)
	}
	if blocks := ParseBlocks(""); len(blocks) != 0 {
		t.Fatalf("expected no blocks for empty input, got %+v", blocks)
	}
}

func TestParseBlocksReconstruction(t *testing.T) {
	inputs := []string{
		"a[justify:center]b[/justify]c",
		"[justify:left]x[/justify][justify:right]y[/justify]",
		"plain",
		"pre [justify:center]one\ntwo[/justify] post",
	}
	for _, input := range inputs {
		stripped := input
		for _, kw := range []string{"left", "center", "right"} {
			stripped = strings.ReplaceAll(stripped, "[justify:"+kw+"]", "")
		}
		stripped = strings.ReplaceAll(stripped, "[/justify]", "")
		var b strings.Builder
		for _, block := range ParseBlocks(input) {
			b.WriteString(block.Text)
		}
		if b.String() != stripped {
			t.Fatalf("reconstruction mismatch for %q: got %q want %q", input, b.String(), stripped)
		}
	}
}

func TestParseBlocksFirstCloseWins(t *testing.T) {
	// A nested open directive is literal content of the enclosing one.
	blocks := ParseBlocks("[justify:center]a[justify:left]b[/justify]")
	if len(blocks) != 1 {
		t.Fatalf("expected one block, got %+v", blocks)
	}
	if blocks[0].Align != AlignCenter || blocks[0].Text != "a[justify:left]b" {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
}
