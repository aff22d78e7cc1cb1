package marktext

import "testing"

func TestClassifyLinesHeadings(t *testing.T) {
	lines := ClassifyLines("# One\n## Two\n### Three")
	want := []Line{
		{Kind: LineHeading, Level: 1, Text: "One"},
		{Kind: LineHeading, Level: 2, Text: "Two"},
		{Kind: LineHeading, Level: 3, Text: "Three"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i, l := range lines {
		if l != want[i] {
			t.Fatalf("line %d: got %+v want %+v", i, l, want[i])
		}
	}
}

func TestClassifyLinesHeadingAfterIndent(t *testing.T) {
	lines := ClassifyLines("   ## Indented")
	if len(lines) != 1 || lines[0].Kind != LineHeading || lines[0].Level != 2 || lines[0].Text != "Indented" {
		t.Fatalf("unexpected classification: %+v", lines)
	}
}

func TestClassifyLinesFourHashesIsBody(t *testing.T) {
	lines := ClassifyLines("#### deep")
	if len(lines) != 1 || lines[0].Kind != LineBody || lines[0].Text != "#### deep" {
		t.Fatalf("unexpected classification: %+v", lines)
	}
}

func TestClassifyLinesHeadingBeatsStyle(t *testing.T) {
	lines := ClassifyLines("# *not italic*")
	if len(lines) != 1 || lines[0].Kind != LineHeading || lines[0].Text != "*not italic*" {
		t.Fatalf("unexpected classification: %+v", lines)
	}
}

func TestClassifyLinesBodyKeepsSpacing(t *testing.T) {
	lines := ClassifyLines("  body text")
	if len(lines) != 1 || lines[0].Kind != LineBody || lines[0].Text != "  body text" {
		t.Fatalf("unexpected classification: %+v", lines)
	}
}

func TestClassifyLinesCollapsesBlankRuns(t *testing.T) {
	lines := ClassifyLines("a\n\n\n\nb")
	want := []Line{
		{Kind: LineBody, Text: "a"},
		{Kind: LineBreak},
		{Kind: LineBody, Text: "b"},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i, l := range lines {
		if l != want[i] {
			t.Fatalf("line %d: got %+v want %+v", i, l, want[i])
		}
	}
}

func TestClassifyLinesTrailingNewline(t *testing.T) {
	lines := ClassifyLines("a\n")
	if len(lines) != 1 || lines[0].Kind != LineBody {
		t.Fatalf("trailing newline produced extra lines: %+v", lines)
	}
}

func TestClassifyLinesCRLF(t *testing.T) {
	lines := ClassifyLines("# One\r\nbody\r\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %+v", lines)
	}
	if lines[0].Kind != LineHeading || lines[0].Text != "One" {
		t.Fatalf("unexpected heading: %+v", lines[0])
	}
	if lines[1].Kind != LineBody || lines[1].Text != "body" {
		t.Fatalf("unexpected body: %+v", lines[1])
	}
}
