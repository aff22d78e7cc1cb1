package marktext

import (
	"strings"
	"testing"
)

func TestParseDocumentFullPipeline(t *testing.T) {
	src := strings.Join([]string{
		"# Title",
		"",
		"Body with **bold** text.",
		"[justify:center]Centered *line*[/justify]",
	}, "\n")
	elements := ParseDocument(src)
	if len(elements) != 4 {
		t.Fatalf("expected 4 elements, got %d: %+v", len(elements), elements)
	}
	if elements[0].Kind != ElementHeading || elements[0].Level != 1 || elements[0].Text != "Title" {
		t.Fatalf("unexpected heading: %+v", elements[0])
	}
	if elements[1].Kind != ElementBreak {
		t.Fatalf("expected break, got %+v", elements[1])
	}
	if elements[2].Kind != ElementParagraph || elements[2].Align != AlignDefault {
		t.Fatalf("unexpected paragraph: %+v", elements[2])
	}
	para := elements[3]
	if para.Kind != ElementParagraph || para.Align != AlignCenter {
		t.Fatalf("expected centered paragraph, got %+v", para)
	}
	for _, seg := range para.Segments {
		if seg.Align != AlignCenter {
			t.Fatalf("segment missing block alignment: %+v", seg)
		}
	}
	if got := joinSegments(para.Segments); got != "Centered line" {
		t.Fatalf("unexpected centered text: %q", got)
	}
}

func TestParseDocumentHeadingInsideJustifyBlock(t *testing.T) {
	elements := ParseDocument("[justify:right]## Right\nbody[/justify]")
	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %+v", elements)
	}
	if elements[0].Kind != ElementHeading || elements[0].Level != 2 || elements[0].Align != AlignRight {
		t.Fatalf("unexpected heading: %+v", elements[0])
	}
	if elements[1].Kind != ElementParagraph || elements[1].Align != AlignRight {
		t.Fatalf("unexpected paragraph: %+v", elements[1])
	}
}

func TestParseDocumentBlankInput(t *testing.T) {
	if elements := ParseDocument("   \n\n"); len(elements) != 0 {
		t.Fatalf("expected no elements, got %+v", elements)
	}
}

func TestParseDocumentCollapsesBlankLines(t *testing.T) {
	elements := ParseDocument("a\n\n\n\nb")
	var breaks int
	for _, el := range elements {
		if el.Kind == ElementBreak {
			breaks++
		}
	}
	if breaks != 1 {
		t.Fatalf("expected one break, got %d: %+v", breaks, elements)
	}
}
