package serialization

import "testing"

func TestInlineVertexListsBasic(t *testing.T) {
	input := `media_file: test.png
frame_width: 100
frame_height: 50
annotations:
  - name: region 1
    type: polygon
    vertices:
      - - 0.1
        - 0.2
      - - 0.3
        - 0.4
`
	want := `media_file: test.png
frame_width: 100
frame_height: 50
annotations:
  - name: region 1
    type: polygon
    vertices: [[0.1, 0.2], [0.3, 0.4]]
`
	if got := inlineVertexLists(input); got != want {
		t.Errorf("Unexpected transform output:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInlineVertexListsMultipleAnnotations(t *testing.T) {
	input := `annotations:
  - name: a
    type: polygon
    vertices:
      - - 0.1
        - 0.2
      - - 0.3
        - 0.4
  - name: b
    type: line
    vertices:
      - - 0.5
        - 0.6
      - - 0.7
        - 0.8
`
	want := `annotations:
  - name: a
    type: polygon
    vertices: [[0.1, 0.2], [0.3, 0.4]]
  - name: b
    type: line
    vertices: [[0.5, 0.6], [0.7, 0.8]]
`
	if got := inlineVertexLists(input); got != want {
		t.Errorf("Unexpected transform output:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInlineVertexListsPassThrough(t *testing.T) {
	// No vertices key: every line passes through unchanged.
	input := `media_file: test.png
frame_width: 100
frame_height: 50
annotations: []
`
	if got := inlineVertexLists(input); got != input {
		t.Errorf("Expected input unchanged, got:\n%s", got)
	}
}

func TestInlineVertexListsStopsOnDedent(t *testing.T) {
	// The key after the block sequence must survive the rewrite.
	input := `  - name: a
    vertices:
      - - 0.1
        - 0.2
    extra: value
`
	want := `  - name: a
    vertices: [[0.1, 0.2]]
    extra: value
`
	if got := inlineVertexLists(input); got != want {
		t.Errorf("Unexpected transform output:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestInlineVertexListsIgnoresSimilarKeys(t *testing.T) {
	// A line merely containing "vertices:" with a value is not rewritten.
	input := `vertices: [[0.1, 0.2]]
count: 1
`
	if got := inlineVertexLists(input); got != input {
		t.Errorf("Expected input unchanged, got:\n%s", got)
	}
}
